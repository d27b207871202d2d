package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
)

type quietLoadedMsg struct {
	items []api.UserNote
	err   error
}

type quietSavedMsg struct {
	note *api.UserNote
	err  error
}

// QuietPageModel is a single free-writing surface. It edits the most recent
// note in place; saving with no prior note creates one, saving again patches
// it.
type QuietPageModel struct {
	client  *api.Client
	note    *api.UserNote
	text    textarea.Model
	errs    []string
	loading bool
	saved   bool
}

func NewQuietPageModel(client *api.Client) QuietPageModel {
	text := textarea.New()
	text.Placeholder = "let it out..."
	text.Focus()
	return QuietPageModel{client: client, text: text}
}

// Load fetches the notes and adopts the most recent one as the working note.
func (m *QuietPageModel) Load() tea.Cmd {
	m.loading = true
	m.errs = nil
	m.saved = false
	client := m.client
	return func() tea.Msg {
		items, err := client.UserNotes().List(context.Background())
		return quietLoadedMsg{items: items, err: err}
	}
}

func (m QuietPageModel) save() tea.Cmd {
	payload := map[string]string{"content": m.text.Value()}
	client, note := m.client, m.note
	return func() tea.Msg {
		var saved *api.UserNote
		var err error
		if note == nil {
			saved, err = client.UserNotes().Create(context.Background(), payload)
		} else {
			saved, err = client.UserNotes().Update(context.Background(), note.ID, payload)
		}
		return quietSavedMsg{note: saved, err: err}
	}
}

func (m QuietPageModel) Update(msg tea.Msg) (QuietPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case quietLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to load your notes, please try again.")
			return m, nil
		}
		if len(msg.items) > 0 {
			// List is most-recent-first.
			m.note = &msg.items[0]
			m.text.SetValue(m.note.Content)
		} else {
			m.note = nil
			m.text.SetValue("")
		}
		return m, nil

	case quietSavedMsg:
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to save your note, please try again.")
			return m, nil
		}
		m.note = msg.note
		m.saved = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			m.errs = nil
			m.saved = false
			return m, m.save()
		}
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	return m, cmd
}

func (m QuietPageModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Quiet Page"))
	sb.WriteString("\n")
	if m.loading {
		sb.WriteString(styles.Muted.Render("loading..."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.text.View())
		sb.WriteString("\n")
	}
	for _, e := range m.errs {
		sb.WriteString(styles.Error.Render(e))
		sb.WriteString("\n")
	}
	if m.saved {
		sb.WriteString(styles.Muted.Render("saved"))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("ctrl+s save · esc dashboard"))
	return sb.String()
}
