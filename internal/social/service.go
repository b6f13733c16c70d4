// Package social handles the side rewards: daily reward, referral reward and tribe membership.
package social

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/osse101/BlumBot_Go/internal/blum"
	"github.com/osse101/BlumBot_Go/internal/clock"
	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/logger"
	"github.com/osse101/BlumBot_Go/internal/utils"
)

// API is the subset of the remote API used for side rewards
type API interface {
	WalletBalance(ctx context.Context) (float64, error)
	DailyReward(ctx context.Context) (blum.TextResponse, error)
	FriendsBalance(ctx context.Context) (domain.FriendsBalance, error)
	ClaimFriends(ctx context.Context) (string, error)
	MyTribe(ctx context.Context) (domain.Tribe, error)
	TribeByChatname(ctx context.Context, chatname string) (domain.Tribe, error)
	JoinTribe(ctx context.Context, id string) (blum.TextResponse, error)
	LeaveTribe(ctx context.Context) error
}

// Config gates the optional tribe behaviour
type Config struct {
	TribeAutoJoin bool
	// TribeSwitch moves the account out of a tribe that is not on the known list
	TribeSwitch bool
}

// Service runs the side-reward calls. Every failure is logged and skipped.
type Service struct {
	api   API
	clock clock.Clock
	cfg   Config
	pick  func(n int) int
}

// NewService creates a social service
func NewService(api API, clk clock.Clock, cfg Config) *Service {
	return &Service{
		api:   api,
		clock: clk,
		cfg:   cfg,
		pick: func(n int) int {
			return utils.RandomInt(0, n-1)
		},
	}
}

// ReportBalance logs the display balance with thousands separators
func (s *Service) ReportBalance(ctx context.Context, playPasses int) error {
	log := logger.FromContext(ctx)

	balance, err := s.api.WalletBalance(ctx)
	if err != nil {
		log.Warn(LogMsgWalletFailed, "error", err)
		return passthrough(ctx, err)
	}
	log.Info(LogMsgBalance, "balance", utils.FormatBalance(balance), "play_passes", playPasses)
	return nil
}

// ClaimDaily claims the daily reward. claimed is true only on an "OK" answer.
func (s *Service) ClaimDaily(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	resp, err := s.api.DailyReward(ctx)
	if err != nil {
		log.Warn(LogMsgDailyFailed, "error", err)
		return false, passthrough(ctx, err)
	}
	if !resp.OK() {
		log.Debug(LogMsgDailyUnavailable, "status", resp.Status, "body", resp.Body)
		return false, nil
	}

	log.Info(LogMsgDailyClaimed)
	return true, nil
}

// ClaimFriends claims the referral reward when it is claimable and non-zero
func (s *Service) ClaimFriends(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	balance, err := s.api.FriendsBalance(ctx)
	if err != nil {
		log.Warn(LogMsgFriendsFailed, "error", err)
		return "", passthrough(ctx, err)
	}
	if !balance.CanClaim || utils.ParseAmount(balance.AmountForClaim) == 0 {
		return "", nil
	}

	amount, err := s.api.ClaimFriends(ctx)
	if err != nil {
		log.Warn(LogMsgFriendsFailed, "error", err)
		return "", passthrough(ctx, err)
	}

	log.Info(LogMsgFriendsClaimed, "amount", amount)
	return amount, nil
}

// Tribe reports the current tribe. Auto-join joins one when there is none;
// switch leaves a tribe outside the known list for one on it.
func (s *Service) Tribe(ctx context.Context) (domain.Tribe, error) {
	log := logger.FromContext(ctx)

	tribe, err := s.api.MyTribe(ctx)
	if err != nil {
		log.Warn(LogMsgTribeFailed, "error", err)
		return domain.Tribe{}, passthrough(ctx, err)
	}
	if !tribe.IsZero() {
		log.Info(LogMsgTribe, "tribe", tribe.Title)
		if s.cfg.TribeSwitch && !slices.Contains(tribeChatnames, tribe.Chatname) {
			return s.SwitchTribe(ctx)
		}
		return tribe, nil
	}

	log.Info(LogMsgNoTribe)
	if !s.cfg.TribeAutoJoin {
		return tribe, nil
	}
	return s.JoinRandomTribe(ctx)
}

// JoinRandomTribe looks up a random known tribe and joins it
func (s *Service) JoinRandomTribe(ctx context.Context) (domain.Tribe, error) {
	log := logger.FromContext(ctx)
	chatname := tribeChatnames[s.pick(len(tribeChatnames))]

	tribe, err := s.api.TribeByChatname(ctx, chatname)
	if err != nil {
		log.Warn(LogMsgTribeJoinFailed, "chatname", chatname, "error", err)
		return domain.Tribe{}, passthrough(ctx, err)
	}

	resp, err := s.api.JoinTribe(ctx, tribe.ID)
	if err != nil {
		log.Warn(LogMsgTribeJoinFailed, "tribe", tribe.Title, "error", err)
		return domain.Tribe{}, passthrough(ctx, err)
	}
	if !resp.OK() {
		log.Info(LogMsgTribeJoinFailed, "tribe", tribe.Title, "response", resp.Body)
		return domain.Tribe{}, nil
	}

	log.Info(LogMsgTribeJoined, "tribe", tribe.Title)
	return tribe, nil
}

// SwitchTribe leaves the current tribe, waits, then joins a random one
func (s *Service) SwitchTribe(ctx context.Context) (domain.Tribe, error) {
	log := logger.FromContext(ctx)

	if err := s.api.LeaveTribe(ctx); err != nil {
		log.Warn(LogMsgTribeFailed, "error", err)
		return domain.Tribe{}, passthrough(ctx, err)
	}
	log.Info(LogMsgTribeLeft)

	if err := s.clock.Sleep(ctx, utils.RandomDuration(MinRejoinPause, MaxRejoinPause)); err != nil {
		return domain.Tribe{}, err
	}
	return s.JoinRandomTribe(ctx)
}

// Run performs daily reward, friends reward and tribe in order
func (s *Service) Run(ctx context.Context) error {
	if _, err := s.ClaimDaily(ctx); err != nil {
		return err
	}
	if _, err := s.ClaimFriends(ctx); err != nil {
		return err
	}
	if _, err := s.Tribe(ctx); err != nil {
		return err
	}
	return nil
}

// passthrough keeps only the errors the caller must act on: auth failures and cancellation
func passthrough(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return fmt.Errorf("social: %w", err)
	}
	return nil
}
