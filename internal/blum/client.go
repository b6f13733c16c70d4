// Package blum is the authenticated transport for the remote mini-app API.
package blum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/BlumBot_Go/internal/backoff"
	"github.com/osse101/BlumBot_Go/internal/domain"
	"github.com/osse101/BlumBot_Go/internal/metrics"
)

// ErrClosed is returned when a request is issued on a closed client
var ErrClosed = errors.New("transport is closed")

// BaseURLs holds the host of every remote service
type BaseURLs struct {
	User   string
	Game   string
	Wallet string
	Tribe  string
	Earn   string
}

// DefaultBaseURLs returns the production hosts
func DefaultBaseURLs() BaseURLs {
	return BaseURLs{
		User:   domain.DefaultUserURL,
		Game:   domain.DefaultGameURL,
		Wallet: domain.DefaultWalletURL,
		Tribe:  domain.DefaultTribeURL,
		Earn:   domain.DefaultEarnURL,
	}
}

// SingleHost routes every service to one base URL (tests, staging gateways)
func SingleHost(base string) BaseURLs {
	base = strings.TrimRight(base, "/")
	return BaseURLs{User: base, Game: base, Wallet: base, Tribe: base, Earn: base}
}

// Options configures a Client
type Options struct {
	BaseURLs BaseURLs
	Proxy    *url.URL
	Timeout  time.Duration
	Headers  http.Header
}

// Client issues requests for one account. It is closed at the end of every cycle.
type Client struct {
	urls      BaseURLs
	http      *http.Client
	transport *http.Transport
	headers   http.Header

	mu     sync.RWMutex
	bearer string

	closed atomic.Bool
}

// NewClient creates a client with its own connection pool
func NewClient(opts Options) *Client {
	if opts.BaseURLs == (BaseURLs{}) {
		opts.BaseURLs = DefaultBaseURLs()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.Proxy != nil {
		transport.Proxy = http.ProxyURL(opts.Proxy)
	}

	headers := opts.Headers.Clone()
	if headers == nil {
		headers = http.Header{}
	}

	return &Client{
		urls:      opts.BaseURLs,
		transport: transport,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		headers: headers,
	}
}

// SetBearer attaches the access token to every following request
func (c *Client) SetBearer(access string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearer = access
}

// ClearBearer drops the attached access token
func (c *Client) ClearBearer() {
	c.SetBearer("")
}

// Bearer returns the attached access token
func (c *Client) Bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bearer
}

// Close releases pooled connections. It is safe to call more than once.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.transport.CloseIdleConnections()
	return nil
}

// Closed reports whether Close has been called
func (c *Client) Closed() bool {
	return c.closed.Load()
}

type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (r *response) text() string {
	return strings.TrimSpace(string(r.body))
}

func (r *response) decode(op string, v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return decodeError(op, r.status, err)
	}
	return nil
}

// do performs one bearer-authenticated request and reads the whole body.
// Only transport failures are errors.
func (c *Client) do(ctx context.Context, op, method, rawURL string, payload any) (*response, error) {
	return c.send(ctx, op, method, rawURL, payload, true)
}

func (c *Client) send(ctx context.Context, op, method, rawURL string, payload any, withBearer bool) (*response, error) {
	if c.closed.Load() {
		return nil, &RequestError{Op: op, Kind: backoff.CategoryClient, Err: ErrClosed}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to marshal body: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}
	if bearer := c.Bearer(); withBearer && bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.APIRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(op, metrics.StatusTransportError).Inc()
		return nil, transportError(op, err)
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, readError(op, resp.StatusCode, err)
	}

	return &response{status: resp.StatusCode, body: data}, nil
}

// getJSON/postJSON require a 2xx answer and decode it into out
func (c *Client) getJSON(ctx context.Context, op, rawURL string, out any) error {
	return c.expectJSON(ctx, op, http.MethodGet, rawURL, nil, out)
}

func (c *Client) postJSON(ctx context.Context, op, rawURL string, payload, out any) error {
	return c.expectJSON(ctx, op, http.MethodPost, rawURL, payload, out)
}

func (c *Client) expectJSON(ctx context.Context, op, method, rawURL string, payload, out any) error {
	resp, err := c.do(ctx, op, method, rawURL, payload)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return statusError(op, resp.status, resp.body)
	}
	if out == nil {
		return nil
	}
	return resp.decode(op, out)
}

// TextResponse is the raw answer of endpoints that reply with plain text
type TextResponse struct {
	Status int
	Body   string
}

// OK reports a 2xx status with the literal body "OK"
func (t TextResponse) OK() bool {
	return t.Status >= 200 && t.Status < 300 && t.Body == domain.BodyOK
}

// postText posts and returns status + trimmed body. 401/403 are errors; other statuses are not.
func (c *Client) postText(ctx context.Context, op, rawURL string, payload any) (TextResponse, error) {
	resp, err := c.do(ctx, op, http.MethodPost, rawURL, payload)
	if err != nil {
		return TextResponse{}, err
	}
	if resp.status == http.StatusUnauthorized || resp.status == http.StatusForbidden {
		return TextResponse{}, statusError(op, resp.status, resp.body)
	}
	return TextResponse{Status: resp.status, Body: resp.text()}, nil
}
