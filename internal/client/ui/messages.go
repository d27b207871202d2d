package ui

import (
	"errors"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
	"github.com/Algo-jtx/SoulSpace/internal/client/session"
)

// sessionResolvedMsg carries the settled startup session state.
type sessionResolvedMsg struct {
	state session.State
}

// authSuccessMsg is emitted by the login and signup pages.
type authSuccessMsg struct {
	user *api.User
}

// authFailedMsg carries screen-local messages for the emitting form.
type authFailedMsg struct {
	messages []string
}

// logoutDoneMsg settles the logout request. A non-nil err leaves the
// identity in place and raises the blocking modal.
type logoutDoneMsg struct {
	err error
}

// errMessages turns any error into display strings: server messages
// verbatim, everything else a generic line.
func errMessages(err error, fallback string) []string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && len(apiErr.Messages) > 0 {
		return apiErr.Messages
	}
	return []string{fallback}
}
