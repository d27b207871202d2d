package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoActiveSession is the ordinary logged-out state: the server answered
// 401 with the distinguished "No active session." body on /check_session.
// Callers must not surface it as an error.
var ErrNoActiveSession = errors.New("no active session")

// Error is a non-2xx response from the server. Messages carries the parsed
// "errors" field, which the server sends as either a string or an array of
// strings.
type Error struct {
	StatusCode int
	Messages   []string
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return fmt.Sprintf("server responded with status %d", e.StatusCode)
}

// parseErrorMessages extracts the "errors" field from a failure body.
// Unparseable bodies yield nil, which Error renders as a status line.
func parseErrorMessages(body []byte) []string {
	var envelope struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Errors) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(envelope.Errors, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}

	var many []string
	if err := json.Unmarshal(envelope.Errors, &many); err == nil {
		return many
	}
	return nil
}
