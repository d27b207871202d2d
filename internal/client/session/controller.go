// Package session resolves the ambient session cookie to an identity once
// per application load and holds that identity for the rest of the process.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
	"github.com/Algo-jtx/SoulSpace/internal/logging"
)

// GlobalError messages for the two generic failure shapes. Server-provided
// messages take precedence when present.
const (
	ErrMsgUnreachable = "cannot reach server"
)

// State is the resolved session tri-state. While Loading is true the other
// fields are not yet meaningful. After resolution exactly one of
// User != nil, GlobalError != "" or "confirmed unauthenticated" (both zero)
// holds.
type State struct {
	Loading     bool
	User        *api.User
	GlobalError string
}

type sessionChecker interface {
	CheckSession(ctx context.Context) (*api.User, error)
}

// Controller performs the startup whoami call. It is the only component
// allowed to set GlobalError; every screen keeps its own local errors.
type Controller struct {
	api   sessionChecker
	store *Store
	log   logging.Logger

	mu    sync.Mutex
	once  sync.Once
	state State
}

func NewController(client sessionChecker, store *Store, log logging.Logger) *Controller {
	return &Controller{
		api:   client,
		store: store,
		log:   log,
		state: State{Loading: true},
	}
}

// State returns the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Resolve issues the whoami request. It runs the request at most once per
// process; repeated calls return the settled state. Loading flips to false
// on every exit path.
func (c *Controller) Resolve(ctx context.Context) State {
	c.once.Do(func() {
		var st State
		defer func() {
			st.Loading = false
			c.mu.Lock()
			c.state = st
			c.mu.Unlock()
			c.store.Set(st.User)
		}()

		user, err := c.api.CheckSession(ctx)
		switch {
		case err == nil:
			st.User = user
		case errors.Is(err, api.ErrNoActiveSession):
			// Ordinary logged-out state, not an error.
		default:
			st.GlobalError = resolveErrorMessage(err)
			c.log.Warn(ctx, "session check failed", "error", err)
		}
	})
	return c.State()
}

// resolveErrorMessage picks the user-facing text for a failed session check:
// the server's own message when it sent one, the status line when it
// answered without one, and the connectivity message when it never answered.
func resolveErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return ErrMsgUnreachable
}
