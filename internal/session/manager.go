// Package session owns the bearer-token lifecycle of one account.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/BlumBot_Go/internal/blum"
	"github.com/osse101/BlumBot_Go/internal/clock"
	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/logger"
	"github.com/osse101/BlumBot_Go/internal/metrics"
	"github.com/osse101/BlumBot_Go/internal/utils"
)

// State is the authentication state of the account
type State string

const (
	StateAnonymous      State = "ANONYMOUS"
	StateAuthenticating State = "AUTHENTICATING"
	StateAuthenticated  State = "AUTHENTICATED"
)

// API is the subset of the remote API used for authentication
type API interface {
	PreflightAuth(ctx context.Context) error
	AuthProvider(ctx context.Context, req blum.AuthRequest) (blum.AuthResponse, error)
	Refresh(ctx context.Context, refresh string) (domain.Credentials, error)
}

// Config tunes the login ladder
type Config struct {
	// RetryLimit bounds the attempts of one login request (520 answers, missing token)
	RetryLimit int
	// ReferralToken is sent when registering through a referral link
	ReferralToken string
}

// Manager tracks the credential pair of one account across cycles.
// The transport is passed per call since it is recreated every cycle.
type Manager struct {
	cfg    Config
	clock  clock.Clock
	suffix func() string

	mu       sync.Mutex
	state    State
	creds    domain.Credentials
	username string
}

// NewManager creates an anonymous session manager
func NewManager(cfg Config, clk clock.Clock) *Manager {
	if cfg.RetryLimit <= 0 {
		cfg.RetryLimit = DefaultLoginRetryLimit
	}
	return &Manager{
		cfg:   cfg,
		clock: clk,
		suffix: func() string {
			return utils.RandomLetters(utils.RandomInt(minSuffixLetters, maxSuffixLetters))
		},
		state: StateAnonymous,
	}
}

// ReferralToken extracts the code from a start parameter such as "ref_QmiirCtfhH"
func ReferralToken(startParam string) string {
	if _, code, ok := strings.Cut(startParam, "_"); ok {
		return code
	}
	return startParam
}

// State returns the current authentication state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Credentials returns the current pair; zero when anonymous
func (m *Manager) Credentials() domain.Credentials {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creds
}

// Username returns the name accepted at registration, if any
func (m *Manager) Username() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.username
}

// Invalidate drops the credentials after an authentication failure
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateAnonymous
	m.creds = domain.Credentials{}
}

// Replace swaps in a refreshed pair
func (m *Manager) Replace(creds domain.Credentials) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = creds
	m.state = StateAuthenticated
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

// Login exchanges the web-app payload for a token pair. With referral enabled it
// registers under username, suffixing it while the name is taken.
func (m *Manager) Login(ctx context.Context, api API, payload, username string, referral bool) (domain.Credentials, error) {
	if payload == "" {
		return domain.Credentials{}, domain.ErrMissingPayload
	}

	m.setState(StateAuthenticating)

	creds, accepted, err := m.login(ctx, api, payload, username, referral)
	if err != nil {
		m.Invalidate()
		metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return domain.Credentials{}, err
	}

	m.mu.Lock()
	m.creds = creds
	m.state = StateAuthenticated
	if accepted != "" {
		m.username = accepted
	}
	m.mu.Unlock()

	metrics.LoginsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return creds, nil
}

func (m *Manager) login(ctx context.Context, api API, payload, username string, referral bool) (domain.Credentials, string, error) {
	log := logger.FromContext(ctx)

	if err := api.PreflightAuth(ctx); err != nil {
		return domain.Credentials{}, "", fmt.Errorf("failed to send auth pre-flight: %w", err)
	}

	if !referral {
		creds, err := m.plainLogin(ctx, api, payload)
		return creds, "", err
	}

	// 1. Register under the desired name, retrying unrelated rejections
	for attempt := 1; ; attempt++ {
		resp, err := m.post(ctx, api, blum.AuthRequest{Query: payload, Username: username, ReferralToken: m.cfg.ReferralToken})
		if err != nil {
			return domain.Credentials{}, "", err
		}
		switch {
		case resp.Token != nil:
			log.Info(LogMsgRegistered, "username", username)
			return *resp.Token, username, nil
		case resp.Message == domain.MsgAlreadyConnected:
			log.Info(LogMsgAlreadyConnected)
			creds, err := m.plainLogin(ctx, api, payload)
			return creds, "", err
		case resp.Message != domain.MsgUsernameUnavailable && attempt >= MaxRegisterAttempts:
			log.Warn(LogMsgRegisterRejected, "status", resp.Status, "message", resp.Message, "attempts", attempt)
			creds, err := m.plainLogin(ctx, api, payload)
			return creds, "", err
		case resp.Message != domain.MsgUsernameUnavailable:
			log.Info(LogMsgRegisterRetry, "status", resp.Status, "message", resp.Message, "attempt", attempt)
			if err := m.clock.Sleep(ctx, UsernamePause); err != nil {
				return domain.Credentials{}, "", err
			}
			continue
		}
		break
	}

	// 2. Name taken: retry with random suffixes
	for attempt := 1; attempt <= MaxUsernameAttempts; attempt++ {
		candidate := username + m.suffix()

		resp, err := m.post(ctx, api, blum.AuthRequest{Query: payload, Username: candidate, ReferralToken: m.cfg.ReferralToken})
		if err != nil {
			return domain.Credentials{}, "", err
		}

		switch {
		case resp.Token != nil:
			log.Info(LogMsgRegistered, "username", candidate, "attempt", attempt)
			return *resp.Token, candidate, nil
		case resp.Message == domain.MsgAlreadyConnected:
			log.Info(LogMsgAlreadyConnected)
			creds, err := m.plainLogin(ctx, api, payload)
			return creds, "", err
		}

		log.Info(LogMsgUsernameTaken, "username", candidate, "message", resp.Message)
		if err := m.clock.Sleep(ctx, UsernamePause); err != nil {
			return domain.Credentials{}, "", err
		}
	}

	log.Warn(LogMsgLadderExhausted, "attempts", MaxUsernameAttempts)
	creds, err := m.plainLogin(ctx, api, payload)
	return creds, "", err
}

// plainLogin posts the payload alone until a token arrives or the retry limit is hit
func (m *Manager) plainLogin(ctx context.Context, api API, payload string) (domain.Credentials, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= m.cfg.RetryLimit; attempt++ {
		resp, err := m.post(ctx, api, blum.AuthRequest{Query: payload})
		if err != nil {
			return domain.Credentials{}, err
		}
		if resp.Token != nil {
			log.Info(LogMsgLoggedIn)
			return *resp.Token, nil
		}

		log.Warn(LogMsgMissingToken, "status", resp.Status, "message", resp.Message, "attempt", attempt)
		if err := m.clock.Sleep(ctx, ReloginDelay); err != nil {
			return domain.Credentials{}, err
		}
	}

	return domain.Credentials{}, fmt.Errorf("%w: %w after %d attempts", domain.ErrLoginExhausted, domain.ErrMissingToken, m.cfg.RetryLimit)
}

// post sends one auth request, waiting out 520 answers within the retry limit
func (m *Manager) post(ctx context.Context, api API, req blum.AuthRequest) (blum.AuthResponse, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; ; attempt++ {
		resp, err := api.AuthProvider(ctx, req)
		if err != nil {
			return blum.AuthResponse{}, fmt.Errorf("failed to log in: %w", err)
		}
		if !resp.Relogin() {
			return resp, nil
		}
		if attempt >= m.cfg.RetryLimit {
			return blum.AuthResponse{}, fmt.Errorf("%w: status %d after %d attempts", domain.ErrLoginExhausted, resp.Status, attempt)
		}

		log.Warn(LogMsgRelogin, "attempt", attempt)
		if err := m.clock.Sleep(ctx, ReloginDelay); err != nil {
			return blum.AuthResponse{}, err
		}
	}
}

// RefreshToken exchanges refresh for a new pair. The caller attaches the new bearer.
func (m *Manager) RefreshToken(ctx context.Context, api API, refresh string) (domain.Credentials, error) {
	if refresh == "" {
		return domain.Credentials{}, domain.ErrNotLoggedIn
	}

	creds, err := api.Refresh(ctx, refresh)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: %w", domain.ErrRefreshFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgTokenRefreshed)
	return creds, nil
}
