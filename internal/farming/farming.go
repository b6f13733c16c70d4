// Package farming drives the start → wait → claim cycle of the farming reward.
package farming

import (
	"context"
	"fmt"

	"github.com/osse101/BlumBot_Go/internal/blum"
	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/logger"
	"github.com/osse101/BlumBot_Go/internal/metrics"
)

// Action is what Step did for an observed window
type Action string

const (
	ActionNone  Action = "none"
	ActionStart Action = "start"
	ActionClaim Action = "claim"
)

// Log messages
const (
	LogMsgStarted = "Farming started"
	LogMsgClaimed = "Farming reward claimed"
	LogMsgRunning = "Farming in progress"
	LogMsgUnknown = "Farming window unrecognised, no action"
	LogMsgRetry   = "Farming call rejected, retrying once"
	LogMsgGaveUp  = "Farming call rejected twice, skipping until next cycle"
)

// API is the subset of the remote API used for farming
type API interface {
	Balance(ctx context.Context) (domain.FarmingWindow, error)
	StartFarming(ctx context.Context) error
	ClaimFarming(ctx context.Context) (domain.ClaimResult, error)
}

// Outcome reports the single action taken for one observation
type Outcome struct {
	State  domain.FarmingState
	Action Action
	// Done is false when the action was rejected twice and skipped for this cycle
	Done  bool
	Claim *domain.ClaimResult
}

// Machine issues at most one farming action per observed window
type Machine struct {
	api API
}

// New creates a farming state machine over api
func New(api API) *Machine {
	return &Machine{api: api}
}

// Observe reads the current window. It never changes remote state.
func (m *Machine) Observe(ctx context.Context) (domain.FarmingWindow, error) {
	window, err := m.api.Balance(ctx)
	if err != nil {
		return domain.FarmingWindow{}, fmt.Errorf("failed to read farming window: %w", err)
	}
	return window, nil
}

// Step acts on one observed window: start when idle, claim when mature, otherwise nothing.
func (m *Machine) Step(ctx context.Context, window domain.FarmingWindow) (Outcome, error) {
	log := logger.FromContext(ctx)
	out := Outcome{State: window.State(), Action: ActionNone}

	switch out.State {
	case domain.FarmingNoWindow:
		out.Action = ActionStart
		done, err := retryOnce(ctx, blum.OpStartFarming, func() error {
			return m.api.StartFarming(ctx)
		})
		record(ActionStart, done, err)
		if err != nil {
			return out, fmt.Errorf("failed to start farming: %w", err)
		}
		out.Done = done
		if done {
			log.Info(LogMsgStarted)
		}

	case domain.FarmingMature:
		out.Action = ActionClaim
		var claim domain.ClaimResult
		done, err := retryOnce(ctx, blum.OpClaimFarming, func() error {
			var err error
			claim, err = m.api.ClaimFarming(ctx)
			return err
		})
		record(ActionClaim, done, err)
		if err != nil {
			return out, fmt.Errorf("failed to claim farming: %w", err)
		}
		out.Done = done
		if done {
			out.Claim = &claim
			log.Info(LogMsgClaimed, "balance", claim.AvailableBalance, "timestamp", claim.Timestamp)
		}

	case domain.FarmingActive:
		log.Debug(LogMsgRunning, "end_time", *window.EndTime, "timestamp", window.Timestamp)

	default:
		log.Warn(LogMsgUnknown, "timestamp", window.Timestamp)
	}

	return out, nil
}

// Run observes once and steps on that observation
func (m *Machine) Run(ctx context.Context) (Outcome, error) {
	window, err := m.Observe(ctx)
	if err != nil {
		return Outcome{}, err
	}
	return m.Step(ctx, window)
}

// retryOnce repeats call once on a non-2xx answer. done=false means it was rejected twice.
func retryOnce(ctx context.Context, op string, call func() error) (bool, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= 2; attempt++ {
		err := call()
		if err == nil {
			return true, nil
		}
		if !blum.IsNonSuccess(err) {
			return false, err
		}
		if attempt == 1 {
			log.Warn(LogMsgRetry, "op", op, "error", err)
		} else {
			log.Warn(LogMsgGaveUp, "op", op, "error", err)
		}
	}
	return false, nil
}

func record(action Action, done bool, err error) {
	result := metrics.ResultSuccess
	if err != nil || !done {
		result = metrics.ResultFailure
	}
	metrics.FarmingActions.WithLabelValues(string(action), result).Inc()
}
