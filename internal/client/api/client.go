// Package api is the typed HTTP client for the SoulSpace server. The session
// cookie set by login/signup lives in the client's cookie jar and travels
// with every subsequent request automatically.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/logging"
)

// Client talks JSON-over-HTTP to the SoulSpace server.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New builds a Client against baseURL. The cookie jar is what makes the
// session ambient: handlers never touch the cookie directly.
func New(baseURL string, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		log:     log,
	}, nil
}

// do issues one request. A nil payload sends no body; a nil out discards the
// response body. Non-2xx statuses come back as *Error; transport failures
// come back as plain wrapped errors, which is how callers tell "the server
// said no" apart from "the server never answered".
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{StatusCode: resp.StatusCode, Messages: parseErrorMessages(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}
