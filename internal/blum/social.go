package blum

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

// WalletBalance returns the display balance of the first points entry
func (c *Client) WalletBalance(ctx context.Context) (float64, error) {
	var body struct {
		Points []struct {
			Balance string `json:"balance"`
		} `json:"points"`
	}
	if err := c.getJSON(ctx, OpWalletBalance, c.urls.Wallet+domain.PathWalletBalance, &body); err != nil {
		return 0, err
	}
	if len(body.Points) == 0 || body.Points[0].Balance == "" {
		return 0, shapeError(OpWalletBalance, "points")
	}

	balance, err := strconv.ParseFloat(body.Points[0].Balance, 64)
	if err != nil {
		return 0, decodeError(OpWalletBalance, http.StatusOK, err)
	}
	return balance, nil
}

// DailyReward claims the daily reward; the server answers "OK" when it was granted
func (c *Client) DailyReward(ctx context.Context) (TextResponse, error) {
	q := url.Values{"offset": {domain.DailyRewardOffset}}
	return c.postText(ctx, OpDailyReward, c.urls.Game+domain.PathDailyReward+"?"+q.Encode(), nil)
}

// FriendsBalance reads the referral reward state
func (c *Client) FriendsBalance(ctx context.Context) (domain.FriendsBalance, error) {
	var balance domain.FriendsBalance
	if err := c.getJSON(ctx, OpFriendsBalance, c.urls.User+domain.PathFriendsBalance, &balance); err != nil {
		return domain.FriendsBalance{}, err
	}
	return balance, nil
}

// ClaimFriends claims the referral reward and returns the claimed amount
func (c *Client) ClaimFriends(ctx context.Context) (string, error) {
	var body struct {
		ClaimBalance string `json:"claimBalance"`
	}
	if err := c.postJSON(ctx, OpFriendsClaim, c.urls.User+domain.PathFriendsClaim, nil, &body); err != nil {
		return "", err
	}
	return body.ClaimBalance, nil
}

// TribeByChatname looks up a tribe by its chat name
func (c *Client) TribeByChatname(ctx context.Context, chatname string) (domain.Tribe, error) {
	var tribe domain.Tribe
	rawURL := c.urls.Tribe + fmt.Sprintf(domain.PathTribeByChatname, url.PathEscape(chatname))
	if err := c.getJSON(ctx, OpTribeByChatname, rawURL, &tribe); err != nil {
		return domain.Tribe{}, err
	}
	if tribe.ID == "" {
		return domain.Tribe{}, shapeError(OpTribeByChatname, "id")
	}
	return tribe, nil
}

// MyTribe returns the account's tribe; the zero Tribe when it has none
func (c *Client) MyTribe(ctx context.Context) (domain.Tribe, error) {
	resp, err := c.do(ctx, OpMyTribe, http.MethodGet, c.urls.Tribe+domain.PathTribeMy, nil)
	if err != nil {
		return domain.Tribe{}, err
	}
	if resp.status == http.StatusNotFound {
		return domain.Tribe{}, nil
	}
	if !resp.ok() {
		return domain.Tribe{}, statusError(OpMyTribe, resp.status, resp.body)
	}

	var tribe domain.Tribe
	if err := resp.decode(OpMyTribe, &tribe); err != nil {
		return domain.Tribe{}, err
	}
	return tribe, nil
}

// JoinTribe joins the tribe with the given id; the server answers "OK" on success
func (c *Client) JoinTribe(ctx context.Context, id string) (TextResponse, error) {
	rawURL := c.urls.Tribe + fmt.Sprintf(domain.PathTribeJoin, url.PathEscape(id))
	return c.postText(ctx, OpJoinTribe, rawURL, nil)
}

// LeaveTribe leaves the current tribe
func (c *Client) LeaveTribe(ctx context.Context) error {
	return c.postJSON(ctx, OpLeaveTribe, c.urls.Tribe+domain.PathTribeLeave, struct{}{}, nil)
}
