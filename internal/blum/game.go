package blum

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

// StartGame spends a play pass. A refusal with a message is returned, not an error.
func (c *Client) StartGame(ctx context.Context) (domain.GameStart, error) {
	resp, err := c.do(ctx, OpStartGame, http.MethodPost, c.urls.Game+domain.PathGamePlay, nil)
	if err != nil {
		return domain.GameStart{}, err
	}

	if resp.status == http.StatusUnauthorized || resp.status == http.StatusForbidden {
		return domain.GameStart{}, statusError(OpStartGame, resp.status, resp.body)
	}

	var start domain.GameStart
	if jsonErr := json.Unmarshal(resp.body, &start); jsonErr != nil || (start.GameID == "" && start.Message == "") {
		if !resp.ok() {
			return domain.GameStart{}, statusError(OpStartGame, resp.status, resp.body)
		}
		if jsonErr != nil {
			return domain.GameStart{}, decodeError(OpStartGame, resp.status, jsonErr)
		}
		return domain.GameStart{}, shapeError(OpStartGame, "gameId")
	}
	return start, nil
}

// ClaimGame submits the round result; the server answers "OK" on success
func (c *Client) ClaimGame(ctx context.Context, round domain.GameRound) (TextResponse, error) {
	return c.postText(ctx, OpClaimGame, c.urls.Game+domain.PathGameClaim, round)
}
