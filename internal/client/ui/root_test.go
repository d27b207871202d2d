package ui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
	"github.com/Algo-jtx/SoulSpace/internal/client/session"
	"github.com/Algo-jtx/SoulSpace/internal/client/theme"
	"github.com/Algo-jtx/SoulSpace/internal/logging"
)

func newTestModel(t *testing.T) (Model, *session.Store) {
	t.Helper()
	client, err := api.New("http://localhost:0", logging.NewNop())
	require.NoError(t, err)
	store := session.NewStore()
	ctrl := session.NewController(client, store, logging.NewNop())
	themes := theme.NewManager(filepath.Join(t.TempDir(), "theme"))
	return NewModel(client, store, ctrl, themes, logging.NewNop()), store
}

func update(t *testing.T, m Model, msg any) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestGateTransitions(t *testing.T) {
	t.Run("resolved error is terminal", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = update(t, m, sessionResolvedMsg{state: session.State{GlobalError: "cannot reach server"}})
		require.Equal(t, gateError, m.gate)
		require.Contains(t, m.View(), "cannot reach server")
	})

	t.Run("resolved unauthenticated goes public", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = update(t, m, sessionResolvedMsg{state: session.State{}})
		require.Equal(t, gatePublic, m.gate)
		require.Contains(t, m.View(), "SoulSpace")
	})

	t.Run("resolved identity goes authenticated", func(t *testing.T) {
		m, store := newTestModel(t)
		user := &api.User{ID: 1, Username: "maya"}
		store.Set(user)
		m = update(t, m, sessionResolvedMsg{state: session.State{User: user}})
		require.Equal(t, gateAuthenticated, m.gate)
		require.Contains(t, m.View(), "maya")
	})
}

func TestAuthSuccessSwitchesToDashboard(t *testing.T) {
	m, store := newTestModel(t)
	m = update(t, m, sessionResolvedMsg{state: session.State{}})

	m = update(t, m, authSuccessMsg{user: &api.User{ID: 2, Username: "ren"}})
	require.Equal(t, gateAuthenticated, m.gate)
	require.Equal(t, pageDashboard, m.page)
	require.NotNil(t, store.Current())
	require.Equal(t, "ren", store.Current().Username)
}

func TestDashboardGuardRendersLoginWithoutIdentity(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, sessionResolvedMsg{state: session.State{}})

	// Navigating into the authenticated tree without an identity lands on
	// the login form, in place.
	for _, target := range []page{pageDashboard, pageLetters, pageCapsules, pageQuiet, pageProfile} {
		m = update(t, m, navigateMsg{page: target})
		require.Equal(t, pageLogin, m.page, "target %d", target)
		require.Contains(t, m.View(), "Welcome back")
	}
}

func TestLogout(t *testing.T) {
	t.Run("success revokes access", func(t *testing.T) {
		m, store := newTestModel(t)
		user := &api.User{ID: 1, Username: "maya"}
		store.Set(user)
		m = update(t, m, sessionResolvedMsg{state: session.State{User: user}})

		m = update(t, m, logoutDoneMsg{})
		require.Equal(t, gatePublic, m.gate)
		require.Equal(t, pageHome, m.page)
		require.Nil(t, store.Current())
	})

	t.Run("failure keeps identity and blocks", func(t *testing.T) {
		m, store := newTestModel(t)
		user := &api.User{ID: 1, Username: "maya"}
		store.Set(user)
		m = update(t, m, sessionResolvedMsg{state: session.State{User: user}})

		m = update(t, m, logoutDoneMsg{err: &api.Error{StatusCode: 500, Messages: []string{"An internal server error occurred."}}})
		require.NotNil(t, store.Current())
		require.Contains(t, m.View(), "Logout failed")
		require.Contains(t, m.View(), "An internal server error occurred.")
	})
}

func TestParseFutureOpenDate(t *testing.T) {
	today := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	t.Run("tomorrow is accepted", func(t *testing.T) {
		got, err := parseFutureOpenDate("2025-06-11", today)
		require.NoError(t, err)
		require.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("today is rejected at day granularity", func(t *testing.T) {
		_, err := parseFutureOpenDate("2025-06-10", today)
		require.EqualError(t, err, "Open date must be in the future.")
	})

	t.Run("past is rejected", func(t *testing.T) {
		_, err := parseFutureOpenDate("2024-01-01", today)
		require.EqualError(t, err, "Open date must be in the future.")
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := parseFutureOpenDate("11/06/2025", today)
		require.EqualError(t, err, "Open date must look like YYYY-MM-DD.")
	})
}

func TestCapsuleFormRejectsTodayWithoutRequest(t *testing.T) {
	client, err := api.New("http://localhost:0", logging.NewNop())
	require.NoError(t, err)

	m := NewCapsulesPageModel(client)
	m.now = func() time.Time { return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC) }
	m.openForm(nil)
	m.message.SetValue("hello future me")
	m.openDate.SetValue("2025-06-10")

	// A nil command means nothing was sent; the error lands locally.
	next, cmd := m.save()
	require.Nil(t, cmd)
	require.Equal(t, []string{"Open date must be in the future."}, next.errs)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "ctrl+t" {
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestThemeToggleChangesStyles(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, sessionResolvedMsg{state: session.State{}})

	before := m.styles.Title.GetForeground()
	m = update(t, m, keyMsg("ctrl+t"))
	require.NotEqual(t, before, m.styles.Title.GetForeground())
	m = update(t, m, keyMsg("ctrl+t"))
	require.Equal(t, before, m.styles.Title.GetForeground())
}
