// Package backoff maps runtime failures to a wait window or an account-fatal decision.
package backoff

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/utils"
)

// Category is the failure class used to pick a delay window
type Category string

const (
	CategoryConnect        Category = "connect"
	CategoryDisconnected   Category = "disconnected"
	CategoryStatus         Category = "http_status"
	CategoryClient         Category = "client"
	CategoryTimeout        Category = "timeout"
	CategoryDecode         Category = "decode"
	CategoryShape          Category = "shape"
	CategoryUnknown        Category = "unknown"
	CategoryInvalidSession Category = "invalid_session"
)

// Categorized is implemented by errors that already know their category
type Categorized interface {
	Category() Category
}

// Window is an inclusive range of whole seconds
type Window struct {
	Min int
	Max int
}

// Policy holds the delay window for every retryable category
type Policy struct {
	windows map[Category]Window
	random  func(min, max int) time.Duration
}

// DefaultPolicy returns the production delay table
func DefaultPolicy() *Policy {
	return &Policy{
		windows: map[Category]Window{
			CategoryConnect:      {ConnectMinSeconds, ConnectMaxSeconds},
			CategoryDisconnected: {DisconnectedMinSeconds, DisconnectedMaxSeconds},
			CategoryStatus:       {StatusMinSeconds, StatusMaxSeconds},
			CategoryClient:       {ClientMinSeconds, ClientMaxSeconds},
			CategoryTimeout:      {TimeoutMinSeconds, TimeoutMaxSeconds},
			CategoryDecode:       {DecodeMinSeconds, DecodeMaxSeconds},
			CategoryShape:        {ShapeMinSeconds, ShapeMaxSeconds},
			CategoryUnknown:      {UnknownMinSeconds, UnknownMaxSeconds},
		},
		random: utils.RandomSeconds,
	}
}

// Window returns the delay window of c. Unlisted categories fall back to unknown.
func (p *Policy) Window(c Category) Window {
	if w, ok := p.windows[c]; ok {
		return w
	}
	return p.windows[CategoryUnknown]
}

// Delay returns a random wait for c, or fatal=true when the account must stop.
func (p *Policy) Delay(c Category) (wait time.Duration, fatal bool) {
	if c == CategoryInvalidSession {
		return 0, true
	}
	w := p.Window(c)
	return p.random(w.Min, w.Max), false
}

// Decide classifies err and returns its category with the wait or fatal decision
func (p *Policy) Decide(err error) (Category, time.Duration, bool) {
	c := Classify(err)
	wait, fatal := p.Delay(c)
	return c, wait, fatal
}

// Classify maps err to a failure category.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}
	if errors.Is(err, domain.ErrInvalidSession) {
		return CategoryInvalidSession
	}

	var categorized Categorized
	if errors.As(err, &categorized) {
		return categorized.Category()
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrLoginExhausted):
		return CategoryStatus
	case errors.Is(err, domain.ErrUnexpectedShape), errors.Is(err, domain.ErrMissingToken):
		return CategoryShape
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		return CategoryTimeout
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF), errors.Is(err, syscall.ECONNRESET):
		return CategoryDisconnected
	case errors.Is(err, syscall.ECONNREFUSED):
		return CategoryConnect
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return CategoryDecode
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return CategoryConnect
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CategoryConnect
	}
	if errors.As(err, &netErr) {
		return CategoryClient
	}

	return CategoryUnknown
}
