// Package runner drives one account: login, farming, tasks, games and side rewards
// in a loop, with every failure routed through the backoff policy.
package runner

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/osse101/BlumBot_Go/internal/backoff"
	"github.com/osse101/BlumBot_Go/internal/blum"
	"github.com/osse101/BlumBot_Go/internal/clock"
	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/farming"
	"github.com/osse101/BlumBot_Go/internal/game"
	"github.com/osse101/BlumBot_Go/internal/logger"
	"github.com/osse101/BlumBot_Go/internal/metrics"
	"github.com/osse101/BlumBot_Go/internal/registry"
	"github.com/osse101/BlumBot_Go/internal/session"
	"github.com/osse101/BlumBot_Go/internal/social"
	"github.com/osse101/BlumBot_Go/internal/tasks"
	"github.com/osse101/BlumBot_Go/internal/utils"
	"github.com/osse101/BlumBot_Go/internal/webapp"
)

// Config is the per-account behaviour
type Config struct {
	Session string
	Proxy   *url.URL

	UseStartupDelay bool
	StartupDelayMin int
	StartupDelayMax int

	Tasks     bool
	PlayGames bool
	MinPoints int
	MaxPoints int

	UseReferral bool
	RefID       string

	SleepMin int
	SleepMax int

	TribeAutoJoin   bool
	TribeSwitch     bool
	LoginRetryLimit int

	BaseURLs       blum.BaseURLs
	RequestTimeout time.Duration
}

// FingerprintResolver returns the cached browser identity of a session
type FingerprintResolver interface {
	Resolve(ctx context.Context, session string) (domain.Fingerprint, error)
}

// Deps are the collaborators of a Runner
type Deps struct {
	Provider     webapp.Provider
	Fingerprints FingerprintResolver
	Hooks        registry.Hooks
	Clock        clock.Clock
	Policy       *backoff.Policy
}

// Runner owns one account's loop. Run must not be called concurrently.
type Runner struct {
	cfg          Config
	provider     webapp.Provider
	fingerprints FingerprintResolver
	hooks        registry.Hooks
	clock        clock.Clock
	policy       *backoff.Policy

	session  *session.Manager
	identity domain.Identity
}

// New creates a runner for one account
func New(cfg Config, deps Deps) *Runner {
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	if deps.Policy == nil {
		deps.Policy = backoff.DefaultPolicy()
	}

	return &Runner{
		cfg:          cfg,
		provider:     deps.Provider,
		fingerprints: deps.Fingerprints,
		hooks:        deps.Hooks,
		clock:        deps.Clock,
		policy:       deps.Policy,
		session: session.NewManager(session.Config{
			RetryLimit:    cfg.LoginRetryLimit,
			ReferralToken: session.ReferralToken(cfg.RefID),
		}, deps.Clock),
	}
}

// Name returns the account's session name
func (r *Runner) Name() string {
	return r.cfg.Session
}

// Session exposes the credential state
func (r *Runner) Session() *session.Manager {
	return r.session
}

// Run loops until ctx is cancelled or the session turns out to be invalid.
// It returns ctx.Err() on cancellation and the fatal error otherwise.
func (r *Runner) Run(ctx context.Context) error {
	ctx = logger.WithSession(ctx, r.cfg.Session)
	log := logger.FromContext(ctx)

	metrics.AccountsRunning.Inc()
	defer metrics.AccountsRunning.Dec()

	// 1. Optional staggered start
	if r.cfg.UseStartupDelay {
		delay := utils.RandomSeconds(r.cfg.StartupDelayMin, r.cfg.StartupDelayMax)
		log.Info(LogMsgStartupDelay, "delay", delay)
		if err := r.clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}

	// 2. Browser identity, created once
	fp, err := r.fingerprints.Resolve(ctx, r.cfg.Session)
	if err != nil {
		return fmt.Errorf("failed to resolve fingerprint: %w", err)
	}
	log.Info(LogMsgStarted, "user_agent", fp.UserAgent)

	// 3. Cycle forever
	for {
		err := r.cycle(ctx, fp)
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Info(LogMsgStopped)
			return ctxErr
		}

		if err != nil {
			if fatal := r.handleFailure(ctx, err); fatal {
				return err
			}
		} else {
			metrics.CyclesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
		}

		if err := r.sleepUntilNextCycle(ctx); err != nil {
			log.Info(LogMsgStopped)
			return err
		}
	}
}

// handleFailure logs err, drops rejected credentials and waits out the backoff.
// It reports whether err is fatal for the account.
func (r *Runner) handleFailure(ctx context.Context, err error) bool {
	log := logger.FromContext(ctx)

	category, wait, fatal := r.policy.Decide(err)
	if fatal {
		metrics.CyclesTotal.WithLabelValues(metrics.ResultFatal).Inc()
		log.Error(LogMsgFatal, "error", err)
		return true
	}

	metrics.CyclesTotal.WithLabelValues(metrics.ResultFailure).Inc()
	metrics.BackoffsTotal.WithLabelValues(string(category)).Inc()

	if errors.Is(err, domain.ErrUnauthorized) {
		log.Warn(LogMsgUnauthorized)
		r.session.Invalidate()
	}

	log.Error(LogMsgCycleFailed, "category", category, "retry_in", wait, "error", err)
	_ = r.clock.Sleep(ctx, wait)
	return false
}

func (r *Runner) sleepUntilNextCycle(ctx context.Context) error {
	wait := utils.RandomSeconds(r.cfg.SleepMin, r.cfg.SleepMax)
	hours, minutes := utils.FormatHoursMinutes(wait)
	logger.FromContext(ctx).Info(LogMsgSleeping, "hours", hours, "minutes", minutes)
	return r.clock.Sleep(ctx, wait)
}

// cycle runs one pass over a fresh transport, closed on every exit path
func (r *Runner) cycle(ctx context.Context, fp domain.Fingerprint) error {
	ctx = logger.WithCycleID(ctx, logger.GenerateCycleID())
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCycleStarted)

	client := blum.NewClient(blum.Options{
		BaseURLs: r.cfg.BaseURLs,
		Proxy:    r.cfg.Proxy,
		Timeout:  r.cfg.RequestTimeout,
		Headers:  blum.DefaultHeaders(fp),
	})
	r.hooks.Open(client)
	defer func() {
		_ = client.Close()
		r.hooks.Close(client)
	}()

	// 1. Authenticate when anonymous
	if r.session.State() != session.StateAuthenticated {
		if err := r.login(ctx, client); err != nil {
			return err
		}
	}
	client.SetBearer(r.session.Credentials().Access)

	// 2. Fresh farming read and balance display
	farm := farming.New(client)
	window, err := farm.Observe(ctx)
	if err != nil {
		return err
	}

	side := social.NewService(client, r.clock, social.Config{TribeAutoJoin: r.cfg.TribeAutoJoin, TribeSwitch: r.cfg.TribeSwitch})
	if err := side.ReportBalance(ctx, window.PlayPasses); err != nil {
		return err
	}

	// 3. One farming action for this observation
	if _, err := farm.Step(ctx, window); err != nil {
		return err
	}
	if err := r.pause(ctx, MinStepPause, MaxStepPause); err != nil {
		return err
	}

	// 4. Tasks
	if r.cfg.Tasks {
		_, err := tasks.NewEngine(client, r.clock).Run(ctx)
		if err := r.escalate(ctx, stageTasks, err); err != nil {
			return err
		}
		if err := r.pause(ctx, MinStepPause, MaxStepPause); err != nil {
			return err
		}
	} else {
		log.Debug(LogMsgTasksDisabled)
	}

	// 5. Games
	if r.cfg.PlayGames && window.PlayPasses > 0 {
		engine := game.NewEngine(client, r.tokenRefresher(client), r.clock, game.Config{
			MinPoints: r.cfg.MinPoints,
			MaxPoints: r.cfg.MaxPoints,
		})
		_, err := engine.Play(ctx, window.PlayPasses)
		if err := r.escalate(ctx, stageGames, err); err != nil {
			return err
		}
	}

	// 6. Daily reward, friends reward, tribe
	if err := r.escalate(ctx, stageSocial, side.Run(ctx)); err != nil {
		return err
	}
	if err := r.pause(ctx, MinSocialPause, MaxSocialPause); err != nil {
		return err
	}

	log.Info(LogMsgCycleCompleted)
	return nil
}

func (r *Runner) login(ctx context.Context, client *blum.Client) error {
	payload, err := r.provider.Payload(ctx, r.cfg.RefID)
	if err != nil {
		return fmt.Errorf("failed to get web app payload: %w", err)
	}
	r.identity = payload.Identity

	username := r.session.Username()
	if username == "" {
		username = r.identity.Username
	}
	if username == "" {
		username = utils.RandomLetters(fallbackUsernameLetters)
	}

	if _, err := r.session.Login(ctx, client, payload.Query, username, r.cfg.UseReferral); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgLoggedIn, "user_id", r.identity.UserID, "name", r.identity.FullName())
	return nil
}

// tokenRefresher swaps a refreshed pair into the session and the transport
func (r *Runner) tokenRefresher(client *blum.Client) game.TokenRefresher {
	return func(ctx context.Context) error {
		creds, err := r.session.RefreshToken(ctx, client, r.session.Credentials().Refresh)
		if err != nil {
			return err
		}
		r.session.Replace(creds)
		client.SetBearer(creds.Access)
		return nil
	}
}

// escalate returns err when the cycle must stop (auth failure or cancellation);
// any other stage failure is logged and the cycle carries on.
func (r *Runner) escalate(ctx context.Context, stage string, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	logger.FromContext(ctx).Warn(LogMsgStageSkipped, "stage", stage, "error", err)
	return nil
}

func (r *Runner) pause(ctx context.Context, min, max time.Duration) error {
	return r.clock.Sleep(ctx, utils.RandomDuration(min, max))
}
