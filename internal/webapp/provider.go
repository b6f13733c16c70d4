// Package webapp supplies the signed web-app payload the remote API logs in with.
package webapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

const (
	webAppDataKey = "tgWebAppData"
	userKey       = "user"
)

// Payload is one login's opaque query plus the identity it carries
type Payload struct {
	Query      string
	StartParam string
	Identity   domain.Identity
}

// Provider obtains a fresh payload for each login attempt
type Provider interface {
	Payload(ctx context.Context, startParam string) (Payload, error)
}

// FileProvider reads the payload from <dir>/<session>.txt. The file holds either the
// full web-app URL (with a #tgWebAppData= fragment) or the raw query.
type FileProvider struct {
	dir     string
	session string
}

// NewFileProvider creates a provider for one session
func NewFileProvider(dir, session string) *FileProvider {
	return &FileProvider{dir: dir, session: session}
}

// Path returns the file the payload is read from
func (p *FileProvider) Path() string {
	return filepath.Join(p.dir, p.session+".txt")
}

// Payload reads and decodes the session file. A missing, empty or unreadable payload
// is domain.ErrInvalidSession.
func (p *FileProvider) Payload(ctx context.Context, startParam string) (Payload, error) {
	if err := ctx.Err(); err != nil {
		return Payload{}, err
	}

	data, err := os.ReadFile(p.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Payload{}, fmt.Errorf("%w: no payload file %s", domain.ErrInvalidSession, p.Path())
		}
		return Payload{}, fmt.Errorf("failed to read payload file: %w", err)
	}

	query, err := ExtractQuery(string(data))
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSession, p.session, err)
	}

	identity, err := DecodeIdentity(query)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSession, p.session, err)
	}
	identity.SessionName = p.session

	return Payload{Query: query, StartParam: startParam, Identity: identity}, nil
}

// ExtractQuery returns the init-data query from a web-app URL or a raw query
func ExtractQuery(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrMissingPayload
	}

	if _, fragment, ok := strings.Cut(raw, "#"); ok {
		raw = fragment
	}
	if strings.Contains(raw, webAppDataKey+"=") {
		values, err := url.ParseQuery(raw)
		if err != nil {
			return "", fmt.Errorf("failed to parse web app url: %w", err)
		}
		raw = values.Get(webAppDataKey)
		if raw == "" {
			return "", domain.ErrMissingPayload
		}
	}

	return raw, nil
}

// DecodeIdentity reads the account from the query's user field
func DecodeIdentity(query string) (domain.Identity, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to parse query: %w", err)
	}

	rawUser := values.Get(userKey)
	if rawUser == "" {
		return domain.Identity{}, errors.New("query has no user field")
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(rawUser), &identity); err != nil {
		return domain.Identity{}, fmt.Errorf("failed to decode user: %w", err)
	}
	if identity.UserID == 0 {
		return domain.Identity{}, errors.New("user has no id")
	}
	return identity, nil
}
