package blum

import (
	"context"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

type balanceResponse struct {
	Timestamp        *int64 `json:"timestamp"`
	AvailableBalance string `json:"availableBalance"`
	PlayPasses       int    `json:"playPasses"`
	Farming          *struct {
		StartTime *int64 `json:"startTime"`
		EndTime   *int64 `json:"endTime"`
	} `json:"farming"`
}

// Balance reads the farming window and play passes, converting milliseconds to seconds
func (c *Client) Balance(ctx context.Context) (domain.FarmingWindow, error) {
	var body balanceResponse
	if err := c.getJSON(ctx, OpBalance, c.urls.Game+domain.PathUserBalance, &body); err != nil {
		return domain.FarmingWindow{}, err
	}
	if body.Timestamp == nil {
		return domain.FarmingWindow{}, shapeError(OpBalance, "timestamp")
	}

	window := domain.FarmingWindow{
		Timestamp:  domain.MillisToSeconds(*body.Timestamp),
		PlayPasses: body.PlayPasses,
	}
	if body.Farming != nil {
		window.StartTime = toSeconds(body.Farming.StartTime)
		window.EndTime = toSeconds(body.Farming.EndTime)
	}
	return window, nil
}

// StartFarming begins a farming window
func (c *Client) StartFarming(ctx context.Context) error {
	return c.postJSON(ctx, OpStartFarming, c.urls.Game+domain.PathFarmingStart, nil, nil)
}

// ClaimFarming ends a mature window and returns the new balance
func (c *Client) ClaimFarming(ctx context.Context) (domain.ClaimResult, error) {
	var body struct {
		Timestamp        *int64 `json:"timestamp"`
		AvailableBalance string `json:"availableBalance"`
	}
	if err := c.postJSON(ctx, OpClaimFarming, c.urls.Game+domain.PathFarmingClaim, nil, &body); err != nil {
		return domain.ClaimResult{}, err
	}
	if body.Timestamp == nil {
		return domain.ClaimResult{}, shapeError(OpClaimFarming, "timestamp")
	}
	return domain.ClaimResult{
		Timestamp:        domain.MillisToSeconds(*body.Timestamp),
		AvailableBalance: body.AvailableBalance,
	}, nil
}

func toSeconds(ms *int64) *int64 {
	if ms == nil {
		return nil
	}
	s := domain.MillisToSeconds(*ms)
	return &s
}
