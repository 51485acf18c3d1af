// Package client is the data-fetching and mutation layer the app screens
// call. Each operation performs one HTTP call against the b-tickets API,
// unwraps the response envelope and normalizes failures into typed errors.
//
// Request signing is explicit: the client owns an injected token store and
// attaches a Bearer header in its single request path. There is no global
// transport mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"btickets/config"
	"btickets/internal/fixtures"
	"btickets/internal/status"
	"btickets/internal/tokenstore"
	"btickets/internal/wishlist"
	"btickets/monitoring"
	"btickets/utils"
)

const DefaultBaseURL = "https://testv2.b-tickets-app.com/api"

type Config struct {
	// BaseURL is the API origin; all resource paths are relative to it.
	// Empty means DefaultBaseURL.
	BaseURL string

	// Timeout bounds each HTTP call. Zero means 10 seconds.
	Timeout time.Duration

	// Tokens persists the session token between requests. Nil means an
	// in-memory store.
	Tokens tokenstore.Store

	// Wishlist backs the wishlist operations. Nil means the in-memory
	// fixture store; swap in a server-backed implementation here once the
	// wishlist endpoints exist.
	Wishlist wishlist.Service

	// HTTPClient overrides the underlying transport, mainly for tests.
	HTTPClient *http.Client
}

type Client struct {
	baseURL  string
	hc       *http.Client
	tokens   tokenstore.Store
	wishlist wishlist.Service
	breaker  *utils.CircuitBreaker
}

// New creates an API client. The zero Config is usable.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	tokens := cfg.Tokens
	if tokens == nil {
		tokens = tokenstore.NewMemory()
	}

	wl := cfg.Wishlist
	if wl == nil {
		wl = wishlist.NewStore(fixtures.Events(), fixtures.WishlistItems())
	}

	return &Client{
		baseURL:  baseURL,
		hc:       hc,
		tokens:   tokens,
		wishlist: wl,
		breaker:  utils.NewCircuitBreaker("btickets-api"),
	}
}

// NewFromConfig builds a client from the environment configuration. With
// a Redis client the session token survives process restarts under
// cfg.TokenKey; without one it lives in process memory.
func NewFromConfig(cfg *config.Config, redisClient *redis.Client) *Client {
	var tokens tokenstore.Store
	if redisClient != nil {
		tokens = tokenstore.NewRedis(redisClient, cfg.TokenKey)
	}
	return New(&Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
		Tokens:  tokens,
	})
}

// Tokens exposes the token store so callers can inspect or reset the
// session outside the client's own operations.
func (c *Client) Tokens() tokenstore.Store {
	return c.tokens
}

// apiCall describes one HTTP operation for the shared request path.
type apiCall struct {
	op     string
	method string
	path   string
	body   any
	out    any

	// notFound, when set, replaces a 404 response.
	notFound error

	// fallback is the user-facing message used when the server response
	// carries none.
	fallback string
}

func (c *Client) do(ctx context.Context, call *apiCall) error {
	start := time.Now()

	// Only the transport runs under the breaker: a 4xx is the backend
	// answering, not the backend being down, and must never trip it.
	var resp *http.Response
	err := c.breaker.Execute(func() error {
		var rtErr error
		resp, rtErr = c.roundTrip(ctx, call)
		return rtErr
	})
	if errors.Is(err, utils.ErrBreakerOpen) {
		monitoring.TrackBreakerRejection()
	}
	if err == nil {
		err = c.receive(call, resp)
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
		slog.Warn("api call failed", "operation", call.op, "error", err)
	}
	monitoring.TrackRequest(call.op, outcome, time.Since(start))

	return err
}

func (c *Client) roundTrip(ctx context.Context, call *apiCall) (*http.Response, error) {
	var body io.Reader
	if call.body != nil {
		b, err := json.Marshal(call.body)
		if err != nil {
			return nil, fmt.Errorf("%s: json.Marshal: %w", call.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, call.method, c.baseURL+call.path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: http.NewRequestWithContext: %w", call.op, err)
	}
	if call.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Sign when a token is present; an unauthenticated request is fine
	// for the public endpoints.
	token, err := c.tokens.Get(ctx)
	if err != nil {
		slog.Warn("token store read failed, sending unauthenticated", "operation", call.op, "error", err)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: http.Do: %w", call.op, err)
	}
	return resp, nil
}

// receive classifies the response and decodes the success body.
func (c *Client) receive(call *apiCall, resp *http.Response) error {
	defer resp.Body.Close()

	if err := c.classify(call, resp); err != nil {
		return err
	}

	if call.out != nil {
		dec := json.NewDecoder(resp.Body)
		if err := dec.Decode(call.out); err != nil {
			return fmt.Errorf("%s: json.Decode: %w", call.op, err)
		}
	}
	return nil
}

// classify turns a non-2xx response into a normalized error. The server's
// message field is preserved when present; otherwise the operation's
// fallback string is used.
func (c *Client) classify(call *apiCall, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", call.op, status.ErrUnauthorized)
	}
	if resp.StatusCode == http.StatusNotFound && call.notFound != nil {
		return fmt.Errorf("%s: %w", call.op, call.notFound)
	}

	message := call.fallback
	var reply struct {
		Message string `json:"message"`
	}
	if b, err := io.ReadAll(resp.Body); err == nil {
		if err := json.Unmarshal(b, &reply); err == nil && reply.Message != "" {
			message = reply.Message
		}
	}

	return &status.APIError{
		Op:         call.op,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
