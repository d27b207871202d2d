package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
	"github.com/Algo-jtx/SoulSpace/internal/client/session"
	"github.com/Algo-jtx/SoulSpace/internal/client/theme"
	"github.com/Algo-jtx/SoulSpace/internal/logging"
)

// gate is the four-state machine driving what is reachable. Loading renders
// nothing but a spinner line; Error is terminal; Public exposes home, login,
// signup; Authenticated exposes the dashboard tree.
type gate int

const (
	gateLoading gate = iota
	gateError
	gatePublic
	gateAuthenticated
)

type page int

const (
	pageHome page = iota
	pageLogin
	pageSignup
	pageNotFound
	pageDashboard
	pageLetters
	pageCapsules
	pageQuiet
	pageLoopBreaker
	pageSoulNotes
	pageBreathGround
	pageProfile
)

// Model is the root Bubble Tea model: session gate, theme, page routing and
// the logout modal.
type Model struct {
	client  *api.Client
	store   *session.Store
	ctrl    *session.Controller
	themes  *theme.Manager
	log     logging.Logger
	styles  Styles

	gate        gate
	page        page
	globalError string

	loginPage     LoginPageModel
	signupPage    SignupPageModel
	dashboard     DashboardPageModel
	letters       LettersPageModel
	capsules      CapsulesPageModel
	quiet         QuietPageModel
	loopBreaker   LoopBreakerPageModel
	soulNotes     SoulNotesPageModel
	breathGround  BreathGroundPageModel
	profile       ProfilePageModel

	loggingOut bool
	logoutErrs []string
}

// NewModel wires the root model. Resolve has not run yet; Init kicks it off.
func NewModel(client *api.Client, store *session.Store, ctrl *session.Controller, themes *theme.Manager, log logging.Logger) Model {
	return Model{
		client:       client,
		store:        store,
		ctrl:         ctrl,
		themes:       themes,
		log:          log,
		styles:       NewStyles(themes.IsDark()),
		gate:         gateLoading,
		page:         pageHome,
		loginPage:    NewLoginPageModel(client),
		signupPage:   NewSignupPageModel(client),
		dashboard:    NewDashboardPageModel(),
		letters:      NewLettersPageModel(client),
		capsules:     NewCapsulesPageModel(client),
		quiet:        NewQuietPageModel(client),
		loopBreaker:  NewLoopBreakerPageModel(client),
		soulNotes:    NewSoulNotesPageModel(client),
		breathGround: NewBreathGroundPageModel(client),
		profile:      NewProfilePageModel(client),
	}
}

func (m Model) Init() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return sessionResolvedMsg{state: ctrl.Resolve(context.Background())}
	}
}

// enterPage switches to target and returns its load command, if any. An
// authenticated target reached without an identity renders the login screen
// in place.
func (m *Model) enterPage(target page) tea.Cmd {
	if target >= pageDashboard && m.store.Current() == nil {
		m.loginPage.Reset()
		m.page = pageLogin
		return nil
	}
	m.page = target
	switch target {
	case pageLogin:
		m.loginPage.Reset()
	case pageSignup:
		m.signupPage.Reset()
	case pageLetters:
		return m.letters.Load()
	case pageCapsules:
		return m.capsules.Load()
	case pageQuiet:
		return m.quiet.Load()
	case pageLoopBreaker:
		return m.loopBreaker.Load()
	case pageSoulNotes:
		return m.soulNotes.Load()
	case pageBreathGround:
		return m.breathGround.Load()
	case pageProfile:
		return m.profile.Load(m.store.Current())
	}
	return nil
}

func (m Model) logout() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return logoutDoneMsg{err: client.Logout(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionResolvedMsg:
		st := msg.state
		switch {
		case st.GlobalError != "":
			m.gate = gateError
			m.globalError = st.GlobalError
		case st.User != nil:
			m.gate = gateAuthenticated
			m.dashboard.SetUsername(st.User.Username)
			m.page = pageDashboard
		default:
			m.gate = gatePublic
			m.page = pageHome
		}
		return m, nil

	case authSuccessMsg:
		m.store.Set(msg.user)
		m.gate = gateAuthenticated
		m.dashboard.SetUsername(msg.user.Username)
		m.page = pageDashboard
		return m, nil

	case logoutDoneMsg:
		m.loggingOut = false
		if msg.err != nil {
			// Identity stays; the modal blocks until dismissed.
			m.logoutErrs = errMessages(msg.err, "Logout failed, please try again.")
			return m, nil
		}
		m.store.Set(nil)
		m.gate = gatePublic
		m.page = pageHome
		return m, nil

	case navigateMsg:
		cmd := m.enterPage(msg.page)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updatePage(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The modal swallows every key until dismissed.
	if len(m.logoutErrs) > 0 {
		m.logoutErrs = nil
		return m, nil
	}
	if m.loggingOut {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		dark, err := m.themes.Toggle()
		if err != nil {
			m.log.Warn(context.Background(), "theme persistence failed", "error", err)
		}
		m.styles = NewStyles(dark)
		return m, nil
	}

	switch m.gate {
	case gateLoading, gateError:
		return m, nil
	case gatePublic:
		return m.updatePublicKey(msg)
	default:
		return m.updateAuthenticatedKey(msg)
	}
}

func (m Model) updatePublicKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.page == pageHome || m.page == pageNotFound {
		switch msg.String() {
		case "l":
			cmd := m.enterPage(pageLogin)
			return m, cmd
		case "s":
			cmd := m.enterPage(pageSignup)
			return m, cmd
		case "esc":
			m.page = pageHome
			return m, nil
		}
		return m, nil
	}
	if msg.String() == "esc" {
		m.page = pageHome
		return m, nil
	}
	return m.updatePage(msg)
}

func (m Model) updateAuthenticatedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+x":
		m.loggingOut = true
		return m, m.logout()
	case "esc":
		if m.page != pageDashboard {
			m.page = pageDashboard
			return m, nil
		}
		return m, nil
	}
	return m.updatePage(msg)
}

// updatePage routes a message to the active page model.
func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case pageLogin:
		m.loginPage, cmd = m.loginPage.Update(msg)
	case pageSignup:
		m.signupPage, cmd = m.signupPage.Update(msg)
	case pageDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case pageLetters:
		m.letters, cmd = m.letters.Update(msg)
	case pageCapsules:
		m.capsules, cmd = m.capsules.Update(msg)
	case pageQuiet:
		m.quiet, cmd = m.quiet.Update(msg)
	case pageLoopBreaker:
		m.loopBreaker, cmd = m.loopBreaker.Update(msg)
	case pageSoulNotes:
		m.soulNotes, cmd = m.soulNotes.Update(msg)
	case pageBreathGround:
		m.breathGround, cmd = m.breathGround.Update(msg)
	case pageProfile:
		m.profile, cmd = m.profile.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if len(m.logoutErrs) > 0 {
		return m.styles.Modal.Render("Logout failed\n\n" + strings.Join(m.logoutErrs, "\n") + "\n\npress any key")
	}
	if m.loggingOut {
		return m.styles.Muted.Render("logging out...")
	}

	switch m.gate {
	case gateLoading:
		return m.styles.Muted.Render("loading...")
	case gateError:
		return errorView(m.styles, m.globalError)
	}

	if m.page >= pageDashboard && m.store.Current() == nil {
		return m.loginPage.View(m.styles)
	}

	switch m.page {
	case pageHome:
		return homeView(m.styles)
	case pageLogin:
		return m.loginPage.View(m.styles)
	case pageSignup:
		return m.signupPage.View(m.styles)
	case pageNotFound:
		return notFoundView(m.styles)
	case pageDashboard:
		return m.dashboard.View(m.styles)
	case pageLetters:
		return m.letters.View(m.styles)
	case pageCapsules:
		return m.capsules.View(m.styles)
	case pageQuiet:
		return m.quiet.View(m.styles)
	case pageLoopBreaker:
		return m.loopBreaker.View(m.styles)
	case pageSoulNotes:
		return m.soulNotes.View(m.styles)
	case pageBreathGround:
		return m.breathGround.View(m.styles)
	case pageProfile:
		return m.profile.View(m.styles)
	}
	return notFoundView(m.styles)
}
