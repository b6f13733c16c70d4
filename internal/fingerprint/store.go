// Package fingerprint persists one synthetic browser identity per session.
package fingerprint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/logger"
	"github.com/osse101/BlumBot_Go/internal/utils"
)

const (
	// DefaultCacheSize is the number of identities kept in memory
	DefaultCacheSize = 256

	// DefaultCacheTTL bounds how long a cached identity skips the disk read
	DefaultCacheTTL = time.Hour
)

// Log messages
const (
	LogMsgCreated  = "Fingerprint created"
	LogMsgInvalid  = "Fingerprint file unusable, regenerating"
	LogMsgMismatch = "Fingerprint session mismatch, regenerating"
)

// Store resolves fingerprints from <dir>/<session>.json, creating them once
type Store struct {
	dir      string
	cache    *fingerprintCache
	generate func(session string) domain.Fingerprint
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{
		dir:      dir,
		cache:    newFingerprintCache(DefaultCacheSize, DefaultCacheTTL),
		generate: Generate,
	}
}

// Path returns the file that holds session's identity
func (s *Store) Path(session string) string {
	return filepath.Join(s.dir, session+".json")
}

// Resolve returns the cached identity of session, generating and writing it when
// the file is missing, empty, invalid or belongs to another session.
func (s *Store) Resolve(ctx context.Context, session string) (domain.Fingerprint, error) {
	if fp, ok := s.cache.Get(session); ok {
		return fp, nil
	}

	log := logger.FromContext(ctx)
	path := s.Path(session)

	var fp domain.Fingerprint
	err := utils.LoadJSON(path, &fp)
	switch {
	case err == nil && fp.SessionName != session:
		log.Warn(LogMsgMismatch, "file", path, "found", fp.SessionName)
	case err == nil && (fp.UserAgent == "" || fp.SecChUa == ""):
		log.Warn(LogMsgInvalid, "file", path, "error", "missing fields")
	case err == nil:
		s.cache.Set(fp)
		return fp, nil
	case errors.Is(err, os.ErrNotExist):
		// first run
	default:
		log.Warn(LogMsgInvalid, "file", path, "error", err)
	}

	fp = s.generate(session)
	if err := utils.SaveJSON(path, fp); err != nil {
		return domain.Fingerprint{}, fmt.Errorf("failed to save fingerprint: %w", err)
	}
	log.Info(LogMsgCreated, "file", path, "user_agent", fp.UserAgent)

	s.cache.Set(fp)
	return fp, nil
}

// Forget drops session from the in-memory cache
func (s *Store) Forget(session string) {
	s.cache.Invalidate(session)
}
