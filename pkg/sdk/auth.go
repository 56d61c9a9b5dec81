package sdk

import (
	"context"
	"encoding/json"
	"net/http"
)

// LoginInput is the authentication request. Session is the session label some
// roles require (e.g. academic year for students) and defaults to "" when not
// applicable.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Session  string `json:"session"`
}

// LoginResponse is the server's answer to a login attempt. On success Token
// is the bearer credential and User is the raw profile payload; on failure
// Message explains why.
type LoginResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	Message string          `json:"message"`
	User    json.RawMessage `json:"user"`
}

// Login authenticates against POST /login. Input is validated locally before
// the round-trip; a server-rejected login surfaces as *APIError carrying the
// server's message, a transport failure as *TransportError.
func (c *Client) Login(ctx context.Context, input LoginInput) (*LoginResponse, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterDevice registers a device/terminal token for push notifications.
// Fire and forget: callers are expected to only log failures.
func (c *Client) RegisterDevice(ctx context.Context, deviceToken string) error {
	body := map[string]string{"deviceToken": deviceToken}
	return c.do(ctx, http.MethodPost, "/notifications/register", nil, body, nil)
}
