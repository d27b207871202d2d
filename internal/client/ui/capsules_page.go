package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
)

const openDateLayout = "2006-01-02"

type capsulesLoadedMsg struct {
	items []api.TimeCapsule
	err   error
}

type capsuleSavedMsg struct {
	err error
}

type capsuleDeletedMsg struct {
	err error
}

type capsulesMode int

const (
	capsulesModeList capsulesMode = iota
	capsulesModeForm
	capsulesModeRead
)

// CapsulesPageModel manages sealed messages to the future. Capsules whose
// open date has arrived can be opened and read; sealed ones show only the
// date.
type CapsulesPageModel struct {
	client   *api.Client
	mode     capsulesMode
	items    []api.TimeCapsule
	selected int
	editID   int64

	message  textarea.Model
	openDate textinput.Model
	onDate   bool

	errs    []string
	loading bool
	now     func() time.Time
}

func NewCapsulesPageModel(client *api.Client) CapsulesPageModel {
	message := textarea.New()
	message.Placeholder = "a message for your future self..."

	openDate := textinput.New()
	openDate.Placeholder = "open date (YYYY-MM-DD)"
	openDate.CharLimit = 10

	return CapsulesPageModel{
		client:   client,
		message:  message,
		openDate: openDate,
		now:      time.Now,
	}
}

// parseFutureOpenDate validates the form's date at day granularity: the
// chosen calendar day must be strictly after today. Today itself is
// rejected before any request goes out.
func parseFutureOpenDate(value string, today time.Time) (time.Time, error) {
	parsed, err := time.Parse(openDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("Open date must look like YYYY-MM-DD.")
	}
	day := parsed.Truncate(24 * time.Hour)
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !day.After(todayDay) {
		return time.Time{}, fmt.Errorf("Open date must be in the future.")
	}
	// Seal until the end of the chosen day's first second, in UTC.
	return day, nil
}

func (m *CapsulesPageModel) Load() tea.Cmd {
	m.loading = true
	m.errs = nil
	client := m.client
	return func() tea.Msg {
		items, err := client.TimeCapsules().List(context.Background())
		return capsulesLoadedMsg{items: items, err: err}
	}
}

func (m *CapsulesPageModel) openForm(capsule *api.TimeCapsule) {
	m.mode = capsulesModeForm
	m.errs = nil
	m.onDate = false
	m.message.Focus()
	m.openDate.Blur()
	if capsule == nil {
		m.editID = 0
		m.message.SetValue("")
		m.openDate.SetValue("")
		return
	}
	m.editID = capsule.ID
	m.message.SetValue(capsule.Message)
	m.openDate.SetValue(capsule.OpenDate.Format(openDateLayout))
}

func (m CapsulesPageModel) save() (CapsulesPageModel, tea.Cmd) {
	openDate, err := parseFutureOpenDate(m.openDate.Value(), m.now())
	if err != nil {
		m.errs = []string{err.Error()}
		return m, nil
	}

	payload := map[string]any{
		"message":   m.message.Value(),
		"open_date": openDate.Format(time.RFC3339),
	}
	client, editID := m.client, m.editID
	return m, func() tea.Msg {
		var err error
		if editID == 0 {
			_, err = client.TimeCapsules().Create(context.Background(), payload)
		} else {
			_, err = client.TimeCapsules().Update(context.Background(), editID, payload)
		}
		return capsuleSavedMsg{err: err}
	}
}

func (m CapsulesPageModel) deleteSelected() tea.Cmd {
	client, id := m.client, m.items[m.selected].ID
	return func() tea.Msg {
		return capsuleDeletedMsg{err: client.TimeCapsules().Delete(context.Background(), id)}
	}
}

func (m CapsulesPageModel) Update(msg tea.Msg) (CapsulesPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case capsulesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to load time capsules, please try again.")
			return m, nil
		}
		m.items = msg.items
		if m.selected >= len(m.items) {
			m.selected = 0
		}
		return m, nil

	case capsuleSavedMsg:
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to save time capsule, please try again.")
			return m, nil
		}
		m.mode = capsulesModeList
		return m, m.Load()

	case capsuleDeletedMsg:
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to delete time capsule, please try again.")
			return m, nil
		}
		return m, m.Load()

	case tea.KeyMsg:
		switch m.mode {
		case capsulesModeForm:
			return m.updateForm(msg)
		case capsulesModeRead:
			m.mode = capsulesModeList
			return m, nil
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m CapsulesPageModel) updateList(msg tea.KeyMsg) (CapsulesPageModel, tea.Cmd) {
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
	case "enter":
		if len(m.items) > 0 {
			capsule := m.items[m.selected]
			if m.opened(capsule) {
				m.mode = capsulesModeRead
			} else {
				m.errs = []string{fmt.Sprintf("Sealed until %s.", capsule.OpenDate.Format(openDateLayout))}
			}
		}
	case "e":
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

func (m CapsulesPageModel) updateForm(msg tea.KeyMsg) (CapsulesPageModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.onDate = !m.onDate
		if m.onDate {
			m.message.Blur()
			m.openDate.Focus()
		} else {
			m.message.Focus()
			m.openDate.Blur()
		}
		return m, nil
	case "ctrl+s":
		m.errs = nil
		return m.save()
	case "ctrl+q":
		m.mode = capsulesModeList
		m.errs = nil
		return m, nil
	}

	var cmd tea.Cmd
	if m.onDate {
		m.openDate, cmd = m.openDate.Update(msg)
	} else {
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m CapsulesPageModel) opened(capsule api.TimeCapsule) bool {
	return !capsule.OpenDate.After(m.now())
}

func (m CapsulesPageModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Time Capsules"))
	sb.WriteString("\n")

	switch m.mode {
	case capsulesModeForm:
		sb.WriteString(m.message.View())
		sb.WriteString("\n")
		sb.WriteString(m.openDate.View())
		sb.WriteString("\n")
		for _, e := range m.errs {
			sb.WriteString(styles.Error.Render(e))
			sb.WriteString("\n")
		}
		sb.WriteString(styles.Help.Render("ctrl+s seal · tab switch field · ctrl+q cancel"))
		return sb.String()

	case capsulesModeRead:
		capsule := m.items[m.selected]
		sb.WriteString(styles.Card.Render(capsule.Message))
		sb.WriteString("\n")
		sb.WriteString(styles.Muted.Render("sealed " + capsule.CreatedAt.Format(openDateLayout)))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("any key back"))
		return sb.String()
	}

	switch {
	case m.loading:
		sb.WriteString(styles.Muted.Render("loading time capsules..."))
		sb.WriteString("\n")
	case len(m.items) == 0:
		sb.WriteString(styles.Muted.Render("No capsules yet. Seal a message for your future self."))
		sb.WriteString("\n")
	default:
		for i, capsule := range m.items {
			status := "sealed until " + capsule.OpenDate.Format(openDateLayout)
			if m.opened(capsule) {
				status = "ready to open"
			}
			line := fmt.Sprintf("%s  (%s)", capsule.CreatedAt.Format(openDateLayout), status)
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
	sb.WriteString(styles.Help.Render("n new · enter open · e edit · d delete · r refresh · esc dashboard"))
	return sb.String()
}
