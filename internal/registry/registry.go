// Package registry tracks the transports currently open across all accounts so
// a shutdown can close them. Each entry is added and removed by the account that owns it.
package registry

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/osse101/BlumBot_Go/internal/metrics"
)

// Hooks is the callback pair handed to each account runner
type Hooks struct {
	OnOpen  func(io.Closer)
	OnClose func(io.Closer)
}

// Open calls OnOpen when set
func (h Hooks) Open(c io.Closer) {
	if h.OnOpen != nil {
		h.OnOpen(c)
	}
}

// Close calls OnClose when set
func (h Hooks) Close(c io.Closer) {
	if h.OnClose != nil {
		h.OnClose(c)
	}
}

// Registry is the set of open transports. The zero value is ready to use.
type Registry struct {
	open  sync.Map
	count atomic.Int64
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// Register adds c; registering twice is a no-op
func (r *Registry) Register(c io.Closer) {
	if _, loaded := r.open.LoadOrStore(c, struct{}{}); !loaded {
		r.count.Add(1)
		metrics.OpenTransports.Inc()
	}
}

// Deregister removes c without closing it
func (r *Registry) Deregister(c io.Closer) {
	if _, loaded := r.open.LoadAndDelete(c); loaded {
		r.count.Add(-1)
		metrics.OpenTransports.Dec()
	}
}

// Len returns the number of registered transports
func (r *Registry) Len() int {
	return int(r.count.Load())
}

// CloseAll closes and removes every registered transport
func (r *Registry) CloseAll() error {
	var errs []error
	r.open.Range(func(key, _ any) bool {
		c := key.(io.Closer)
		r.Deregister(c)
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	return errors.Join(errs...)
}

// Hooks returns the registration callback pair for one runner
func (r *Registry) Hooks() Hooks {
	return Hooks{
		OnOpen:  r.Register,
		OnClose: r.Deregister,
	}
}
