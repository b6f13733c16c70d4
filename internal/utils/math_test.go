package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomInt_StaysInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandomInt(190, 230)
		assert.GreaterOrEqual(t, v, 190)
		assert.LessOrEqual(t, v, 230)
	}
}

func TestRandomInt_InvertedBoundsReturnsMin(t *testing.T) {
	assert.Equal(t, 10, RandomInt(10, 5))
}

func TestRandomDuration(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := RandomDuration(30*time.Second, 40*time.Second)
		assert.GreaterOrEqual(t, d, 30*time.Second)
		assert.LessOrEqual(t, d, 40*time.Second)
	}
	assert.Equal(t, time.Second, RandomDuration(time.Second, time.Second))
}

func TestRandomSeconds(t *testing.T) {
	d := RandomSeconds(5, 5)
	assert.Equal(t, 5*time.Second, d)
}

func TestRandomLetters(t *testing.T) {
	s := RandomLetters(8)
	assert.Len(t, s, 8)
	for _, r := range s {
		assert.True(t, r >= 'a' && r <= 'z', "unexpected rune %q", r)
	}
}
