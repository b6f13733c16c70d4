// Package game spends play passes on reward rounds.
package game

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/BlumBot_Go/internal/blum"
	"github.com/osse101/BlumBot_Go/internal/clock"
	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/logger"
	"github.com/osse101/BlumBot_Go/internal/metrics"
	"github.com/osse101/BlumBot_Go/internal/utils"
)

// API is the subset of the remote API used for games
type API interface {
	StartGame(ctx context.Context) (domain.GameStart, error)
	ClaimGame(ctx context.Context, round domain.GameRound) (blum.TextResponse, error)
}

// TokenRefresher swaps a fresh bearer onto the transport
type TokenRefresher func(ctx context.Context) error

// Config holds the reward range submitted with each claim
type Config struct {
	MinPoints int
	MaxPoints int
}

// Report summarises one games pass
type Report struct {
	Played int
	Points int
}

// Engine plays rounds while passes remain
type Engine struct {
	api     API
	refresh TokenRefresher
	clock   clock.Clock
	cfg     Config

	points   func(min, max int) int
	duration func(min, max time.Duration) time.Duration
}

// NewEngine creates a game engine
func NewEngine(api API, refresh TokenRefresher, clk clock.Clock, cfg Config) *Engine {
	return &Engine{
		api:      api,
		refresh:  refresh,
		clock:    clk,
		cfg:      cfg,
		points:   utils.RandomInt,
		duration: utils.RandomDuration,
	}
}

// Play spends up to passes rounds. Failures end the pass early and are logged;
// only context cancellation and authentication failures are returned.
func (e *Engine) Play(ctx context.Context, passes int) (Report, error) {
	log := logger.FromContext(ctx)
	var report Report
	tries := StartRetries
	refreshedAt := 0

	for passes > 0 {
		// 1. Keep the token fresh on long runs
		if report.Played-refreshedAt >= RoundsPerToken {
			if !e.refreshed(ctx, report.Played) {
				if err := ctx.Err(); err != nil {
					return report, err
				}
				log.Warn(LogMsgRefreshAborted)
				break
			}
			refreshedAt = report.Played
		}

		// 2. Start a round
		start, err := e.api.StartGame(ctx)
		if err != nil && (errors.Is(err, domain.ErrUnauthorized) || ctx.Err() != nil) {
			return report, fmt.Errorf("failed to start game: %w", err)
		}
		if err != nil || start.GameID == "" {
			metrics.GameRounds.WithLabelValues(resultNoStart).Inc()
			tries--
			if tries == 0 {
				log.Warn(LogMsgGivingUp, "passes", passes)
				break
			}
			log.Info(LogMsgCannotStart, "passes", passes, "message", start.Message, "error", err)
			continue
		}
		log.Info(LogMsgStarted, "game_id", start.GameID)

		// 3. Play, then claim
		if err := e.clock.Sleep(ctx, e.duration(MinPlayDuration, MaxPlayDuration)); err != nil {
			return report, err
		}

		round := domain.GameRound{GameID: start.GameID, Points: e.points(e.cfg.MinPoints, e.cfg.MaxPoints)}
		ok, err := e.claim(ctx, round)
		if err != nil {
			return report, err
		}
		if !ok {
			break
		}

		report.Played++
		report.Points += round.Points
		metrics.GameRounds.WithLabelValues(resultPlayed).Inc()
		metrics.GamePoints.Add(float64(round.Points))
		log.Info(LogMsgFinished, "points", round.Points)

		if err := e.clock.Sleep(ctx, e.duration(MinRoundPause, MaxRoundPause)); err != nil {
			return report, err
		}
		passes--
	}

	log.Info(LogMsgPassCompleted, "played", report.Played, "points", report.Points)
	return report, nil
}

// claim submits the round, repeating once on a non-200 status. ok=false ends the pass.
func (e *Engine) claim(ctx context.Context, round domain.GameRound) (bool, error) {
	log := logger.FromContext(ctx)

	resp, err := e.api.ClaimGame(ctx, round)
	if err == nil && resp.Status != http.StatusOK {
		resp, err = e.api.ClaimGame(ctx, round)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || ctx.Err() != nil {
			return false, fmt.Errorf("failed to claim game: %w", err)
		}
		metrics.GameRounds.WithLabelValues(resultRejected).Inc()
		log.Warn(LogMsgClaimFailed, "error", err)
		return false, nil
	}
	if !resp.OK() {
		metrics.GameRounds.WithLabelValues(resultRejected).Inc()
		log.Warn(LogMsgClaimRejected, "status", resp.Status, "body", resp.Body)
		return false, nil
	}
	return true, nil
}

// refreshed runs the refresher up to RefreshAttempts times
func (e *Engine) refreshed(ctx context.Context, played int) bool {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRefreshing, "played", played)
	if e.refresh == nil {
		return false
	}

	for attempt := 1; attempt <= RefreshAttempts; attempt++ {
		err := e.refresh(ctx)
		if err == nil {
			return true
		}
		log.Warn(LogMsgRefreshFailed, "attempt", attempt, "error", err)
		if e.clock.Sleep(ctx, refreshRetryWait) != nil {
			return false
		}
	}
	return false
}
