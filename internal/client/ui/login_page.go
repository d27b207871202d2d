package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
)

// LoginPageModel is the identifier + password form.
type LoginPageModel struct {
	client     *api.Client
	inputs     []textinput.Model
	focus      int
	errs       []string
	submitting bool
}

func NewLoginPageModel(client *api.Client) LoginPageModel {
	identifier := textinput.New()
	identifier.Placeholder = "username or email"
	identifier.Focus()
	identifier.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	return LoginPageModel{
		client: client,
		inputs: []textinput.Model{identifier, password},
	}
}

// Reset clears the form for the next visit.
func (m *LoginPageModel) Reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
	m.focus = 0
	m.errs = nil
	m.submitting = false
}

func (m *LoginPageModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m LoginPageModel) submit() tea.Cmd {
	identifier := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	return func() tea.Msg {
		user, err := m.client.Login(context.Background(), identifier, password)
		if err != nil {
			return authFailedMsg{messages: errMessages(err, "Login failed, please try again.")}
		}
		return authSuccessMsg{user: user}
	}
}

func (m LoginPageModel) Update(msg tea.Msg) (LoginPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authFailedMsg:
		m.errs = msg.messages
		m.submitting = false
		return m, nil
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			m.errs = nil
			m.submitting = true
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m LoginPageModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Welcome back"))
	sb.WriteString("\n")
	for _, in := range m.inputs {
		sb.WriteString(in.View())
		sb.WriteString("\n")
	}
	for _, e := range m.errs {
		sb.WriteString(styles.Error.Render(e))
		sb.WriteString("\n")
	}
	if m.submitting {
		sb.WriteString(styles.Muted.Render("signing in..."))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("enter submit · tab next field · esc back"))
	return sb.String()
}
