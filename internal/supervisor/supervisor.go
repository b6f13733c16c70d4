// Package supervisor runs one account runner per configured session and owns
// the shared transport registry and the health server.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/BlumBot_Go/internal/blum"
	"github.com/osse101/BlumBot_Go/internal/bootstrap"
	"github.com/osse101/BlumBot_Go/internal/clock"
	"github.com/osse101/BlumBot_Go/internal/config"
	"github.com/osse101/BlumBot_Go/internal/fingerprint"
	"github.com/osse101/BlumBot_Go/internal/logger"
	"github.com/osse101/BlumBot_Go/internal/registry"
	"github.com/osse101/BlumBot_Go/internal/runner"
	"github.com/osse101/BlumBot_Go/internal/server"
	"github.com/osse101/BlumBot_Go/internal/webapp"
)

// ProviderFactory returns the payload source of one session
type ProviderFactory func(session string) webapp.Provider

// Deps overrides the collaborators built from config. Zero values use the defaults.
type Deps struct {
	Registry     *registry.Registry
	Providers    ProviderFactory
	Fingerprints runner.FingerprintResolver
	Clock        clock.Clock
}

// Supervisor fans accounts out as independent goroutines
type Supervisor struct {
	cfg      *config.Config
	registry *registry.Registry
	runners  []*runner.Runner
	running  atomic.Int64
}

// New builds a runner per account
func New(cfg *config.Config, deps Deps) (*Supervisor, error) {
	if deps.Registry == nil {
		deps.Registry = registry.New()
	}
	if deps.Providers == nil {
		deps.Providers = func(session string) webapp.Provider {
			return webapp.NewFileProvider(cfg.SessionsDir, session)
		}
	}
	if deps.Fingerprints == nil {
		deps.Fingerprints = fingerprint.NewStore(cfg.UserAgentsDir)
	}

	baseURLs := blum.DefaultBaseURLs()
	if cfg.APIBaseURL != "" {
		baseURLs = blum.SingleHost(cfg.APIBaseURL)
	}

	s := &Supervisor{cfg: cfg, registry: deps.Registry}
	for _, acc := range cfg.Accounts {
		proxy, err := acc.ProxyURL()
		if err != nil {
			return nil, err
		}

		s.runners = append(s.runners, runner.New(runner.Config{
			Session:         acc.Session,
			Proxy:           proxy,
			UseStartupDelay: cfg.UseStartupDelay,
			StartupDelayMin: cfg.StartupDelay.Min,
			StartupDelayMax: cfg.StartupDelay.Max,
			Tasks:           cfg.Tasks,
			PlayGames:       cfg.PlayGames,
			MinPoints:       cfg.Points.Min,
			MaxPoints:       cfg.Points.Max,
			UseReferral:     cfg.UseReferral,
			RefID:           cfg.RefID,
			SleepMin:        cfg.Sleep.Min,
			SleepMax:        cfg.Sleep.Max,
			TribeAutoJoin:   cfg.TribeAutoJoin,
			TribeSwitch:     cfg.TribeSwitch,
			LoginRetryLimit: cfg.LoginRetryLimit,
			BaseURLs:        baseURLs,
			RequestTimeout:  cfg.RequestTimeout,
		}, runner.Deps{
			Provider:     deps.Providers(acc.Session),
			Fingerprints: deps.Fingerprints,
			Hooks:        deps.Registry.Hooks(),
			Clock:        deps.Clock,
		}))
	}
	return s, nil
}

// Registry exposes the shared transport registry
func (s *Supervisor) Registry() *registry.Registry {
	return s.registry
}

// Running returns the number of live account runners
func (s *Supervisor) Running() int {
	return int(s.running.Load())
}

// Ready fails once every account has stopped
func (s *Supervisor) Ready(_ context.Context) error {
	if s.Running() == 0 {
		return errors.New(ErrMsgNoAccountsRunning)
	}
	return nil
}

// Run blocks until every account has stopped. Cancelling ctx stops all of them;
// a fatal account error stops only that account. The returned error is non-nil
// only when the health server fails.
func (s *Supervisor) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	var srv *server.Server
	if s.cfg.MetricsAddr != "" {
		srv = server.NewServer(s.cfg.MetricsAddr, s)
		g.Go(func() error {
			if err := srv.Start(); err != nil {
				return fmt.Errorf("health server: %w", err)
			}
			return nil
		})
	}

	logger.FromContext(ctx).Info(LogMsgStarting, "accounts", len(s.runners))

	var accounts sync.WaitGroup
	for _, r := range s.runners {
		accounts.Add(1)
		s.running.Add(1)
		g.Go(func() error {
			defer accounts.Done()
			defer s.running.Add(-1)
			s.runAccount(gctx, r)
			return nil
		})
	}

	g.Go(func() error {
		accounts.Wait()
		logger.FromContext(ctx).Info(LogMsgAllStopped)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:   srv,
			Registry: s.registry,
		})
		return nil
	})

	return g.Wait()
}

func (s *Supervisor) runAccount(ctx context.Context, r *runner.Runner) {
	err := r.Run(ctx)
	log := logger.FromContext(logger.WithSession(ctx, r.Name()))

	if ctx.Err() != nil {
		log.Info(LogMsgAccountStopped)
		return
	}
	log.Error(LogMsgAccountFailed, "error", err)
}
