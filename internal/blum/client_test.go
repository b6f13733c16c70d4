package blum_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BlumBot_Go/internal/backoff"
	"github.com/osse101/BlumBot_Go/internal/blum"
	"github.com/osse101/BlumBot_Go/internal/blum/blumtest"
	"github.com/osse101/BlumBot_Go/internal/domain"
)

func TestBalance_TruncatesMilliseconds(t *testing.T) {
	tc := blumtest.SetupTestContext(t)
	tc.Handle("GET "+domain.PathUserBalance, blumtest.Respond(http.StatusOK, map[string]any{
		"timestamp":  1000999,
		"playPasses": 2,
		"farming":    map[string]any{"startTime": 100500, "endTime": 900999},
	}))

	window, err := tc.Client.Balance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1000), window.Timestamp)
	require.NotNil(t, window.StartTime)
	require.NotNil(t, window.EndTime)
	assert.Equal(t, int64(100), *window.StartTime)
	assert.Equal(t, int64(900), *window.EndTime)
	assert.Equal(t, 2, window.PlayPasses)
	assert.Equal(t, domain.FarmingMature, window.State())
}

func TestBalance_NullFarming(t *testing.T) {
	tc := blumtest.SetupTestContext(t)
	tc.Handle("GET "+domain.PathUserBalance, blumtest.Respond(http.StatusOK, map[string]any{
		"timestamp":  1000000,
		"playPasses": 2,
		"farming":    nil,
	}))

	window, err := tc.Client.Balance(context.Background())
	require.NoError(t, err)
	assert.Nil(t, window.StartTime)
	assert.Nil(t, window.EndTime)
	assert.Equal(t, domain.FarmingNoWindow, window.State())
}

func TestBalance_MissingTimestampIsShapeError(t *testing.T) {
	tc := blumtest.SetupTestContext(t)
	tc.Handle("GET "+domain.PathUserBalance, blumtest.Respond(http.StatusOK, map[string]any{"playPasses": 1}))

	_, err := tc.Client.Balance(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnexpectedShape)
	assert.Equal(t, backoff.CategoryShape, backoff.Classify(err))
}

func TestBearerAttachedToProtectedCalls(t *testing.T) {
	tc := blumtest.SetupTestContext(t)

	var seen string
	tc.Handle("GET "+domain.PathFriendsBalance, func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		blumtest.JSON(w, http.StatusOK, map[string]any{"amountForClaim": "12.5", "canClaim": true})
	})

	tc.Client.SetBearer("access-1")
	balance, err := tc.Client.FriendsBalance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer access-1", seen)
	assert.True(t, balance.CanClaim)
	assert.Equal(t, "12.5", balance.AmountForClaim)
}

func TestRefresh_SendsNoBearerAndKeepsAttachedOne(t *testing.T) {
	tc := blumtest.SetupTestContext(t)

	var (
		seen string
		body map[string]string
	)
	tc.Handle("POST "+domain.PathAuthRefresh, func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&body)
		blumtest.JSON(w, http.StatusOK, map[string]string{"access": "a2", "refresh": "r2"})
	})

	tc.Client.SetBearer("a1")
	pair, err := tc.Client.Refresh(context.Background(), "r1")
	require.NoError(t, err)

	assert.Empty(t, seen)
	assert.Equal(t, "r1", body["refresh"])
	assert.Equal(t, domain.Credentials{Access: "a2", Refresh: "r2"}, pair)
	assert.Equal(t, "a1", tc.Client.Bearer())
}

func TestAuthProvider(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		tc := blumtest.SetupTestContext(t)
		var req blum.AuthRequest
		tc.Handle("POST "+domain.PathAuthProvider, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&req)
			blumtest.JSON(w, http.StatusOK, map[string]any{"token": map[string]string{"access": "a", "refresh": "r"}})
		})

		resp, err := tc.Client.AuthProvider(context.Background(), blum.AuthRequest{Query: "q"})
		require.NoError(t, err)
		require.NotNil(t, resp.Token)
		assert.Equal(t, "a", resp.Token.Access)
		assert.Equal(t, "q", req.Query)
		assert.Empty(t, req.Username)
	})

	t.Run("relogin status", func(t *testing.T) {
		tc := blumtest.SetupTestContext(t)
		tc.Handle("POST "+domain.PathAuthProvider, blumtest.RespondText(domain.StatusRelogin, "<html>"))

		resp, err := tc.Client.AuthProvider(context.Background(), blum.AuthRequest{Query: "q"})
		require.NoError(t, err)
		assert.True(t, resp.Relogin())
		assert.Nil(t, resp.Token)
	})

	t.Run("refusal message is not an error", func(t *testing.T) {
		tc := blumtest.SetupTestContext(t)
		tc.Handle("POST "+domain.PathAuthProvider, blumtest.Respond(http.StatusBadRequest, map[string]string{"message": domain.MsgUsernameUnavailable}))

		resp, err := tc.Client.AuthProvider(context.Background(), blum.AuthRequest{Query: "q", Username: "bob"})
		require.NoError(t, err)
		assert.Equal(t, domain.MsgUsernameUnavailable, resp.Message)
		assert.Nil(t, resp.Token)
	})
}

func TestStatusErrors(t *testing.T) {
	tc := blumtest.SetupTestContext(t)
	tc.Handle("GET "+domain.PathTasks, blumtest.RespondText(http.StatusUnauthorized, "expired"))
	tc.Handle("POST "+domain.PathFarmingStart, blumtest.RespondText(http.StatusInternalServerError, "boom"))

	_, err := tc.Client.Tasks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, blum.IsNonSuccess(err))

	err = tc.Client.StartFarming(context.Background())
	require.Error(t, err)
	assert.True(t, blum.IsNonSuccess(err))
	status, ok := blum.StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, backoff.CategoryStatus, backoff.Classify(err))
}

func TestDecodeErrorIsClassified(t *testing.T) {
	tc := blumtest.SetupTestContext(t)
	tc.Handle("GET "+domain.PathTasks, blumtest.RespondText(http.StatusOK, "not json"))

	_, err := tc.Client.Tasks(context.Background())
	require.Error(t, err)
	assert.Equal(t, backoff.CategoryDecode, backoff.Classify(err))
}

func TestTaskCalls(t *testing.T) {
	tc := blumtest.SetupTestContext(t)

	var keyword map[string]string
	tc.Handle("POST /api/v1/tasks/t-1/start", blumtest.Respond(http.StatusOK, map[string]string{"status": domain.TaskStatusStarted}))
	tc.Handle("POST /api/v1/tasks/t-1/claim", blumtest.Respond(http.StatusOK, map[string]string{"status": domain.TaskStatusFinished}))
	tc.Handle("POST /api/v1/tasks/t-1/validate", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&keyword)
		blumtest.JSON(w, http.StatusOK, map[string]string{"status": domain.TaskStatusReadyForClaim})
	})

	ctx := context.Background()
	require.NoError(t, tc.Client.StartTask(ctx, "t-1"))

	status, err := tc.Client.ValidateTask(ctx, "t-1", "VALUE")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusReadyForClaim, status)
	assert.Equal(t, "VALUE", keyword["keyword"])

	status, err = tc.Client.ClaimTask(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusFinished, status)
}

func TestStartGame(t *testing.T) {
	t.Run("round", func(t *testing.T) {
		tc := blumtest.SetupTestContext(t)
		tc.Handle("POST "+domain.PathGamePlay, blumtest.Respond(http.StatusOK, map[string]string{"gameId": "g-1"}))

		start, err := tc.Client.StartGame(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "g-1", start.GameID)
	})

	t.Run("cannot start", func(t *testing.T) {
		tc := blumtest.SetupTestContext(t)
		tc.Handle("POST "+domain.PathGamePlay, blumtest.Respond(http.StatusBadRequest, map[string]string{"message": domain.GameCannotStart}))

		start, err := tc.Client.StartGame(context.Background())
		require.NoError(t, err)
		assert.Empty(t, start.GameID)
		assert.Equal(t, domain.GameCannotStart, start.Message)
	})
}

func TestTextEndpoints(t *testing.T) {
	tc := blumtest.SetupTestContext(t)

	var offset string
	tc.Handle("POST "+domain.PathDailyReward, func(w http.ResponseWriter, r *http.Request) {
		offset = r.URL.Query().Get("offset")
		blumtest.Text(w, http.StatusOK, "OK")
	})
	tc.Handle("POST "+domain.PathGameClaim, blumtest.RespondText(http.StatusBadRequest, "game session not finished"))

	resp, err := tc.Client.DailyReward(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, domain.DailyRewardOffset, offset)

	resp, err = tc.Client.ClaimGame(context.Background(), domain.GameRound{GameID: "g", Points: 200})
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusBadRequest, resp.Status)
}

func TestTribeCalls(t *testing.T) {
	tc := blumtest.SetupTestContext(t)
	tc.Handle("GET "+domain.PathTribeMy, blumtest.RespondText(http.StatusNotFound, `{"message":"NOT_FOUND"}`))
	tc.Handle("GET /api/v1/tribe/by-chatname/blumvnd", blumtest.Respond(http.StatusOK, map[string]string{"id": "tr-1", "title": "Blum VN"}))
	tc.Handle("POST /api/v1/tribe/tr-1/join", blumtest.RespondText(http.StatusOK, "OK"))

	ctx := context.Background()
	tribe, err := tc.Client.MyTribe(ctx)
	require.NoError(t, err)
	assert.True(t, tribe.IsZero())

	tribe, err = tc.Client.TribeByChatname(ctx, "blumvnd")
	require.NoError(t, err)
	assert.Equal(t, "tr-1", tribe.ID)

	resp, err := tc.Client.JoinTribe(ctx, tribe.ID)
	require.NoError(t, err)
	assert.True(t, resp.OK())
}

func TestWalletBalance(t *testing.T) {
	tc := blumtest.SetupTestContext(t)
	tc.Handle("GET "+domain.PathWalletBalance, blumtest.Respond(http.StatusOK, map[string]any{
		"points": []map[string]string{{"balance": "1234.5", "symbol": "BP"}},
	}))

	balance, err := tc.Client.WalletBalance(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1234.5, balance, 0.0001)
}

func TestClosedClient(t *testing.T) {
	tc := blumtest.SetupTestContext(t)
	client := tc.NewClient()
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
	assert.True(t, client.Closed())

	_, err := client.Balance(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, blum.ErrClosed))
}

func TestConnectionRefusedIsConnectCategory(t *testing.T) {
	tc := blumtest.SetupTestContext(t)
	client := tc.NewClient()
	tc.Server.Close()

	_, err := client.Balance(context.Background())
	require.Error(t, err)
	assert.Equal(t, backoff.CategoryConnect, backoff.Classify(err))
}
