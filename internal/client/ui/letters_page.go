package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
)

type lettersLoadedMsg struct {
	items []api.Letter
	err   error
}

type letterSavedMsg struct {
	err error
}

type letterDeletedMsg struct {
	err error
}

type lettersMode int

const (
	lettersModeList lettersMode = iota
	lettersModeForm
)

// LettersPageModel lists unsent letters and edits them in place. The list is
// a cache of one fetch, refetched wholesale after every mutation.
type LettersPageModel struct {
	client   *api.Client
	mode     lettersMode
	items    []api.Letter
	selected int
	editID   int64 // 0 means the form creates

	title   textinput.Model
	content textarea.Model
	onTitle bool

	errs    []string
	loading bool
}

func NewLettersPageModel(client *api.Client) LettersPageModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 254

	content := textarea.New()
	content.Placeholder = "what you never sent..."

	return LettersPageModel{client: client, title: title, content: content}
}

// Load refetches the collection.
func (m *LettersPageModel) Load() tea.Cmd {
	m.loading = true
	m.errs = nil
	client := m.client
	return func() tea.Msg {
		items, err := client.Letters().List(context.Background())
		return lettersLoadedMsg{items: items, err: err}
	}
}

func (m *LettersPageModel) openForm(letter *api.Letter) {
	m.mode = lettersModeForm
	m.errs = nil
	m.onTitle = true
	m.title.Focus()
	m.content.Blur()
	if letter == nil {
		m.editID = 0
		m.title.SetValue("")
		m.content.SetValue("")
		return
	}
	m.editID = letter.ID
	m.title.SetValue(letter.Title)
	m.content.SetValue(letter.Content)
}

func (m LettersPageModel) save() tea.Cmd {
	payload := map[string]string{
		"title":   strings.TrimSpace(m.title.Value()),
		"content": m.content.Value(),
	}
	client, editID := m.client, m.editID
	return func() tea.Msg {
		var err error
		if editID == 0 {
			_, err = client.Letters().Create(context.Background(), payload)
		} else {
			_, err = client.Letters().Update(context.Background(), editID, payload)
		}
		return letterSavedMsg{err: err}
	}
}

func (m LettersPageModel) deleteSelected() tea.Cmd {
	client, id := m.client, m.items[m.selected].ID
	return func() tea.Msg {
		return letterDeletedMsg{err: client.Letters().Delete(context.Background(), id)}
	}
}

func (m LettersPageModel) Update(msg tea.Msg) (LettersPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case lettersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to load letters, please try again.")
			return m, nil
		}
		m.items = msg.items
		if m.selected >= len(m.items) {
			m.selected = 0
		}
		return m, nil

	case letterSavedMsg:
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to save letter, please try again.")
			return m, nil
		}
		m.mode = lettersModeList
		return m, m.Load()

	case letterDeletedMsg:
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to delete letter, please try again.")
			return m, nil
		}
		return m, m.Load()

	case tea.KeyMsg:
		if m.mode == lettersModeForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m LettersPageModel) updateList(msg tea.KeyMsg) (LettersPageModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "n":
		m.openForm(nil)
	case "enter", "e":
		if len(m.items) > 0 {
			m.openForm(&m.items[m.selected])
		}
	case "d":
		if len(m.items) > 0 {
			m.errs = nil
			return m, m.deleteSelected()
		}
	case "r":
		return m, m.Load()
	}
	return m, nil
}

func (m LettersPageModel) updateForm(msg tea.KeyMsg) (LettersPageModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.onTitle = !m.onTitle
		if m.onTitle {
			m.title.Focus()
			m.content.Blur()
		} else {
			m.title.Blur()
			m.content.Focus()
		}
		return m, nil
	case "ctrl+s":
		m.errs = nil
		return m, m.save()
	case "ctrl+q":
		m.mode = lettersModeList
		m.errs = nil
		return m, nil
	}

	var cmd tea.Cmd
	if m.onTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m LettersPageModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Letters Unsent"))
	sb.WriteString("\n")

	if m.mode == lettersModeForm {
		sb.WriteString(m.title.View())
		sb.WriteString("\n")
		sb.WriteString(m.content.View())
		sb.WriteString("\n")
		for _, e := range m.errs {
			sb.WriteString(styles.Error.Render(e))
			sb.WriteString("\n")
		}
		sb.WriteString(styles.Help.Render("ctrl+s save · tab switch field · ctrl+q cancel"))
		return sb.String()
	}

	switch {
	case m.loading:
		sb.WriteString(styles.Muted.Render("loading letters..."))
		sb.WriteString("\n")
	case len(m.items) == 0:
		sb.WriteString(styles.Muted.Render("No letters yet. Write the one you never sent."))
		sb.WriteString("\n")
	default:
		for i, letter := range m.items {
			line := fmt.Sprintf("%s  %s", letter.CreatedAt.Format("2006-01-02"), letter.Title)
			if i == m.selected {
				sb.WriteString(styles.Selected.Render(line))
			} else {
				sb.WriteString(styles.Body.Render(line))
			}
			sb.WriteString("\n")
		}
	}
	for _, e := range m.errs {
		sb.WriteString(styles.Error.Render(e))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("n new · enter edit · d delete · r refresh · esc dashboard"))
	return sb.String()
}
