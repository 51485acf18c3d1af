package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"btickets/models"
)

// Session is the result of a successful login or registration.
type Session struct {
	User  models.User
	Token string
}

type authEnvelope struct {
	Data struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	} `json:"data"`
}

// Login authenticates with the given credentials and persists the session
// token so every subsequent call is signed.
//
// The mobile app persisted the token only on registration; with injected
// signing that would leave every post-login call unauthenticated, so login
// persists it too.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var reply authEnvelope
	err := c.do(ctx, &apiCall{
		op:     "login",
		method: http.MethodPost,
		path:   "/auth/login",
		body: map[string]string{
			"email":    email,
			"password": password,
		},
		out:      &reply,
		fallback: "Login failed",
	})
	if err != nil {
		return nil, err
	}

	if err := c.tokens.Set(ctx, reply.Data.Token); err != nil {
		return nil, fmt.Errorf("login: persist token: %w", err)
	}

	return &Session{User: reply.Data.User, Token: reply.Data.Token}, nil
}

// Register creates an account and persists the returned session token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*Session, error) {
	var reply authEnvelope
	err := c.do(ctx, &apiCall{
		op:     "register",
		method: http.MethodPost,
		path:   "/auth/register",
		body: map[string]string{
			"name":     name,
			"email":    email,
			"password": password,
		},
		out:      &reply,
		fallback: "Register failed",
	})
	if err != nil {
		return nil, err
	}

	if err := c.tokens.Set(ctx, reply.Data.Token); err != nil {
		return nil, fmt.Errorf("register: persist token: %w", err)
	}

	return &Session{User: reply.Data.User, Token: reply.Data.Token}, nil
}

// Logout ends the server-side session and clears the stored token. The
// token is cleared even when the server call fails; a stale token is only
// rejected on the next request anyway.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, &apiCall{
		op:       "logout",
		method:   http.MethodPost,
		path:     "/logout",
		fallback: "Logout failed",
	})

	if clearErr := c.tokens.Clear(ctx); clearErr != nil {
		slog.Warn("logout: clearing token store failed", "error", clearErr)
	}

	return err
}

// DeleteAccount removes the authenticated account and clears the stored
// token.
func (c *Client) DeleteAccount(ctx context.Context) error {
	err := c.do(ctx, &apiCall{
		op:       "delete_account",
		method:   http.MethodPost,
		path:     "/account/delete",
		fallback: "Account deletion failed",
	})
	if err != nil {
		return err
	}

	if clearErr := c.tokens.Clear(ctx); clearErr != nil {
		slog.Warn("delete account: clearing token store failed", "error", clearErr)
	}
	return nil
}
