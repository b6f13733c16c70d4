package blum

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

// AuthRequest is the login/registration body
type AuthRequest struct {
	Query         string `json:"query"`
	Username      string `json:"username,omitempty"`
	ReferralToken string `json:"referralToken,omitempty"`
}

// AuthResponse is the decoded login answer. Token is nil when the server refused.
type AuthResponse struct {
	Status  int
	Token   *domain.Credentials
	Message string
}

// Relogin reports the transient "temporarily unavailable" answer
func (r AuthResponse) Relogin() bool {
	return r.Status == domain.StatusRelogin
}

// PreflightAuth sends the CORS pre-flight the web app issues before login. The status is ignored.
func (c *Client) PreflightAuth(ctx context.Context) error {
	_, err := c.send(ctx, OpPreflight, http.MethodOptions, c.urls.User+domain.PathAuthProvider, nil, false)
	return err
}

// AuthProvider posts the web-app payload. Refusals are returned in the response, not as errors.
func (c *Client) AuthProvider(ctx context.Context, req AuthRequest) (AuthResponse, error) {
	resp, err := c.send(ctx, OpAuthProvider, http.MethodPost, c.urls.User+domain.PathAuthProvider, req, false)
	if err != nil {
		return AuthResponse{}, err
	}

	out := AuthResponse{Status: resp.status}
	if out.Relogin() {
		return out, nil
	}

	var body struct {
		Token   *domain.Credentials `json:"token"`
		Message string              `json:"message"`
	}
	if err := json.Unmarshal(resp.body, &body); err != nil {
		if !resp.ok() {
			return out, statusError(OpAuthProvider, resp.status, resp.body)
		}
		return out, decodeError(OpAuthProvider, resp.status, err)
	}

	out.Message = body.Message
	if body.Token != nil && body.Token.Access != "" {
		out.Token = body.Token
	}
	return out, nil
}

// Refresh exchanges a refresh token for a new pair. The request carries no bearer
// and the attached one is left unchanged.
func (c *Client) Refresh(ctx context.Context, refresh string) (domain.Credentials, error) {
	resp, err := c.send(ctx, OpRefresh, http.MethodPost, c.urls.User+domain.PathAuthRefresh, map[string]string{"refresh": refresh}, false)
	if err != nil {
		return domain.Credentials{}, err
	}
	if !resp.ok() {
		return domain.Credentials{}, statusError(OpRefresh, resp.status, resp.body)
	}

	var pair domain.Credentials
	if err := resp.decode(OpRefresh, &pair); err != nil {
		return domain.Credentials{}, err
	}
	if pair.Access == "" {
		return domain.Credentials{}, shapeError(OpRefresh, "access")
	}
	return pair, nil
}
