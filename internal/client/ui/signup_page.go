package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
)

// SignupPageModel is the account-creation form.
type SignupPageModel struct {
	client     *api.Client
	inputs     []textinput.Model
	focus      int
	errs       []string
	submitting bool
}

func NewSignupPageModel(client *api.Client) SignupPageModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()
	username.CharLimit = 80

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	confirmation := textinput.New()
	confirmation.Placeholder = "confirm password"
	confirmation.EchoMode = textinput.EchoPassword
	confirmation.CharLimit = 120

	return SignupPageModel{
		client: client,
		inputs: []textinput.Model{username, email, password, confirmation},
	}
}

func (m *SignupPageModel) Reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
	m.focus = 0
	m.errs = nil
	m.submitting = false
}

func (m *SignupPageModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m SignupPageModel) submit() tea.Cmd {
	params := api.SignupParams{
		Username:             strings.TrimSpace(m.inputs[0].Value()),
		Email:                strings.TrimSpace(m.inputs[1].Value()),
		Password:             m.inputs[2].Value(),
		PasswordConfirmation: m.inputs[3].Value(),
	}
	return func() tea.Msg {
		user, err := m.client.Signup(context.Background(), params)
		if err != nil {
			return authFailedMsg{messages: errMessages(err, "Signup failed, please try again.")}
		}
		return authSuccessMsg{user: user}
	}
}

func (m SignupPageModel) Update(msg tea.Msg) (SignupPageModel, tea.Cmd) {
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

func (m SignupPageModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Create your space"))
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
		sb.WriteString(styles.Muted.Render("creating account..."))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("enter submit · tab next field · esc back"))
	return sb.String()
}
