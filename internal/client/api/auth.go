package api

import (
	"context"
	"errors"
	"net/http"
)

const noActiveSessionMarker = "No active session."

// CheckSession asks the server who the cookie belongs to. The distinguished
// 401 body "No active session." maps to ErrNoActiveSession; any other
// failure passes through unchanged.
func (c *Client) CheckSession(ctx context.Context) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/check_session", nil, &user)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			for _, msg := range apiErr.Messages {
				if msg == noActiveSessionMarker {
					return nil, ErrNoActiveSession
				}
			}
		}
		return nil, err
	}
	return &user, nil
}

// Login authenticates with a username or email plus password.
func (c *Client) Login(ctx context.Context, identifier, password string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"identifier": identifier,
		"password":   password,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SignupParams is the payload for POST /signup.
type SignupParams struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (c *Client) Signup(ctx context.Context, p SignupParams) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/signup", p, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the server session. The jar drops the cookie when the
// server expires it.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/logout", nil, nil)
}
