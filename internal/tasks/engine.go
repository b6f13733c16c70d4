// Package tasks discovers earn tasks, starts them, verifies keyword tasks and claims rewards.
package tasks

import (
	"context"
	"fmt"

	"github.com/osse101/BlumBot_Go/internal/clock"
	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/logger"
	"github.com/osse101/BlumBot_Go/internal/metrics"
)

// API is the subset of the remote API used for tasks
type API interface {
	Tasks(ctx context.Context) ([]domain.TaskSection, error)
	StartTask(ctx context.Context, id string) error
	ClaimTask(ctx context.Context, id string) (string, error)
	ValidateTask(ctx context.Context, id, keyword string) (string, error)
}

// Report counts what one task pass achieved
type Report struct {
	Started  int
	Claimed  int
	Verified int
	Failed   int
}

// Add merges another report into r
func (r *Report) Add(o Report) {
	r.Started += o.Started
	r.Claimed += o.Claimed
	r.Verified += o.Verified
	r.Failed += o.Failed
}

// Engine runs task passes. A single task failing never aborts the pass.
type Engine struct {
	api   API
	clock clock.Clock
}

// NewEngine creates a task engine
func NewEngine(api API, clk clock.Clock) *Engine {
	return &Engine{api: api, clock: clk}
}

// Fetch returns the flattened task list
func (e *Engine) Fetch(ctx context.Context) ([]domain.Task, error) {
	sections, err := e.api.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return Discover(sections), nil
}

// Run performs start pass, settle pause, refetch and claim pass
func (e *Engine) Run(ctx context.Context) (Report, error) {
	log := logger.FromContext(ctx)
	var report Report

	// 1. Start everything not yet started
	list, err := e.Fetch(ctx)
	if err != nil {
		log.Warn(LogMsgFetchFailed, "error", err)
		return report, err
	}
	started, err := e.StartPass(ctx, list)
	report.Add(started)
	if err != nil {
		return report, err
	}

	if err := e.clock.Sleep(ctx, SettleDelay); err != nil {
		return report, err
	}

	// 2. Claim with fresh statuses
	list, err = e.Fetch(ctx)
	if err != nil {
		log.Warn(LogMsgFetchFailed, "error", err)
		return report, err
	}
	claimed, err := e.ClaimPass(ctx, list)
	report.Add(claimed)

	log.Info(LogMsgPassCompleted,
		"started", report.Started,
		"claimed", report.Claimed,
		"verified", report.Verified,
		"failed", report.Failed)
	return report, err
}

// StartPass starts every NOT_STARTED task except progress targets.
// The only error returned is ctx cancellation.
func (e *Engine) StartPass(ctx context.Context, list []domain.Task) (Report, error) {
	log := logger.FromContext(ctx)
	var report Report

	for _, task := range list {
		if task.Status != domain.TaskStatusNotStarted || task.Type == domain.TaskTypeProgressTarget {
			continue
		}

		log.Info(LogMsgStarting, "task", task.Title)
		if err := e.api.StartTask(ctx, task.ID); err != nil {
			report.Failed++
			recordAction(actionStart, metrics.ResultFailure)
			log.Warn(LogMsgTaskFailed, "task", task.Title, "action", actionStart, "error", err)
		} else {
			report.Started++
			recordAction(actionStart, metrics.ResultSuccess)
		}

		if err := e.clock.Sleep(ctx, CallPacing); err != nil {
			return report, err
		}
	}

	return report, nil
}

// ClaimPass claims READY_FOR_CLAIM tasks (except progress tasks) and verifies
// READY_FOR_VERIFY keyword tasks, claiming them straight away when verification
// makes them claimable. The only error returned is ctx cancellation.
func (e *Engine) ClaimPass(ctx context.Context, list []domain.Task) (Report, error) {
	log := logger.FromContext(ctx)
	var report Report

	for _, task := range list {
		switch {
		case task.Status == domain.TaskStatusReadyForClaim && task.Type != domain.TaskTypeProgressTask:
			if e.claim(ctx, task) {
				report.Claimed++
			} else {
				report.Failed++
			}

		case task.Status == domain.TaskStatusReadyForVerify && task.ValidationType == domain.ValidationKeyword:
			keyword := Keyword(task.Title)
			if keyword == "" {
				log.Debug(LogMsgNoKeyword, "task", task.Title)
				continue
			}
			if e.verify(ctx, task, keyword) {
				report.Verified++
			} else {
				report.Failed++
			}

		default:
			continue
		}

		if err := e.clock.Sleep(ctx, CallPacing); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (e *Engine) claim(ctx context.Context, task domain.Task) bool {
	log := logger.FromContext(ctx)

	status, err := e.api.ClaimTask(ctx, task.ID)
	if err != nil {
		recordAction(actionClaim, metrics.ResultFailure)
		log.Warn(LogMsgTaskFailed, "task", task.Title, "action", actionClaim, "error", err)
		return false
	}
	if status != domain.TaskStatusFinished {
		recordAction(actionClaim, metrics.ResultFailure)
		log.Info(LogMsgNotFinished, "task", task.Title, "status", status)
		return false
	}

	recordAction(actionClaim, metrics.ResultSuccess)
	log.Info(LogMsgClaimed, "task", task.Title)
	return true
}

func (e *Engine) verify(ctx context.Context, task domain.Task, keyword string) bool {
	log := logger.FromContext(ctx)

	status, err := e.api.ValidateTask(ctx, task.ID, keyword)
	if err != nil {
		recordAction(actionValidate, metrics.ResultFailure)
		log.Warn(LogMsgTaskFailed, "task", task.Title, "action", actionValidate, "error", err)
		return false
	}
	if status != domain.TaskStatusReadyForClaim {
		recordAction(actionValidate, metrics.ResultFailure)
		return false
	}
	recordAction(actionValidate, metrics.ResultSuccess)

	if !e.claim(ctx, task) {
		return false
	}
	log.Info(LogMsgVerified, "task", task.Title)
	return true
}

func recordAction(action, result string) {
	metrics.TaskActions.WithLabelValues(action, result).Inc()
}
