package utils

import (
	"math/rand"
	"time"
)

const lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Pacing jitter, not security critical
}

// RandomSeconds returns a whole number of seconds in [min, max] as a duration
func RandomSeconds(min, max int) time.Duration {
	return time.Duration(RandomInt(min, max)) * time.Second
}

// RandomDuration returns a uniformly distributed duration in [min, max]
func RandomDuration(min, max time.Duration) time.Duration {
	if min >= max {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)+1)) //nolint:gosec // Pacing jitter
}

// RandomLetters returns n random lowercase ASCII letters
func RandomLetters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = lowercaseLetters[rand.Intn(len(lowercaseLetters))] //nolint:gosec // Username suffix
	}
	return string(b)
}
