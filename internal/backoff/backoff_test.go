package backoff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

type taggedErr struct{ c Category }

func (e taggedErr) Error() string      { return string(e.c) }
func (e taggedErr) Category() Category { return e.c }

func TestDelay_TimeoutWindowProperty(t *testing.T) {
	p := DefaultPolicy()
	for i := 0; i < 1000; i++ {
		wait, fatal := p.Delay(CategoryTimeout)
		assert.False(t, fatal)
		assert.GreaterOrEqual(t, wait, 7200*time.Second)
		assert.LessOrEqual(t, wait, 14400*time.Second)
	}
}

func TestDelay_ConnectWindowProperty(t *testing.T) {
	p := DefaultPolicy()
	for i := 0; i < 1000; i++ {
		wait, fatal := p.Delay(CategoryConnect)
		assert.False(t, fatal)
		assert.GreaterOrEqual(t, wait, 1800*time.Second)
		assert.LessOrEqual(t, wait, 3600*time.Second)
	}
}

func TestDelay_Windows(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		category Category
		want     Window
	}{
		{CategoryConnect, Window{1800, 3600}},
		{CategoryDisconnected, Window{900, 1800}},
		{CategoryStatus, Window{3600, 7200}},
		{CategoryClient, Window{3600, 7200}},
		{CategoryTimeout, Window{7200, 14400}},
		{CategoryDecode, Window{1800, 3600}},
		{CategoryShape, Window{1800, 3600}},
		{CategoryUnknown, Window{7200, 14400}},
		{Category("something-new"), Window{7200, 14400}},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, p.Window(tt.category))
		})
	}
}

func TestDelay_InvalidSessionIsFatal(t *testing.T) {
	wait, fatal := DefaultPolicy().Delay(CategoryInvalidSession)
	assert.True(t, fatal)
	assert.Zero(t, wait)
}

func TestClassify(t *testing.T) {
	var syntaxErr error
	var probe map[string]any
	syntaxErr = json.Unmarshal([]byte("{oops"), &probe)

	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"invalid session", fmt.Errorf("handshake: %w", domain.ErrInvalidSession), CategoryInvalidSession},
		{"tagged error", fmt.Errorf("wrapped: %w", taggedErr{CategoryDisconnected}), CategoryDisconnected},
		{"unauthorized", domain.ErrUnauthorized, CategoryStatus},
		{"missing field", fmt.Errorf("%w: farming", domain.ErrUnexpectedShape), CategoryShape},
		{"missing token", domain.ErrMissingToken, CategoryShape},
		{"login exhausted", fmt.Errorf("%w after 10 attempts", domain.ErrLoginExhausted), CategoryStatus},
		{"deadline", context.DeadlineExceeded, CategoryTimeout},
		{"unexpected eof", io.ErrUnexpectedEOF, CategoryDisconnected},
		{"json syntax", syntaxErr, CategoryDecode},
		{"dial", &net.OpError{Op: "dial", Err: errors.New("refused")}, CategoryConnect},
		{"dns", &net.DNSError{Err: "no such host", Name: "x"}, CategoryConnect},
		{"read", &net.OpError{Op: "read", Err: errors.New("reset")}, CategoryClient},
		{"anything else", errors.New("boom"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestDecide(t *testing.T) {
	c, wait, fatal := DefaultPolicy().Decide(context.DeadlineExceeded)
	assert.Equal(t, CategoryTimeout, c)
	assert.False(t, fatal)
	assert.GreaterOrEqual(t, wait, 7200*time.Second)

	c, _, fatal = DefaultPolicy().Decide(domain.ErrInvalidSession)
	assert.Equal(t, CategoryInvalidSession, c)
	assert.True(t, fatal)
}
