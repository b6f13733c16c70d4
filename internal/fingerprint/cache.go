package fingerprint

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

// fingerprintCache fronts disk reads with an expiring LRU
type fingerprintCache struct {
	lru *expirable.LRU[string, domain.Fingerprint]
}

func newFingerprintCache(size int, ttl time.Duration) *fingerprintCache {
	return &fingerprintCache{
		lru: expirable.NewLRU[string, domain.Fingerprint](size, nil, ttl),
	}
}

func (c *fingerprintCache) Get(session string) (domain.Fingerprint, bool) {
	return c.lru.Get(session)
}

func (c *fingerprintCache) Set(fp domain.Fingerprint) {
	c.lru.Add(fp.SessionName, fp)
}

func (c *fingerprintCache) Invalidate(session string) {
	c.lru.Remove(session)
}
