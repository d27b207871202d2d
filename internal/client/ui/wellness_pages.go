package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
)

type promptLoadedMsg struct {
	prompt string
	err    error
}

// LoopBreakerPageModel shows one redirection prompt at a time.
type LoopBreakerPageModel struct {
	client  *api.Client
	prompt  string
	errs    []string
	loading bool
}

func NewLoopBreakerPageModel(client *api.Client) LoopBreakerPageModel {
	return LoopBreakerPageModel{client: client}
}

func (m *LoopBreakerPageModel) Load() tea.Cmd {
	m.loading = true
	m.errs = nil
	client := m.client
	return func() tea.Msg {
		prompt, err := client.LoopPrompt(context.Background())
		return promptLoadedMsg{prompt: prompt, err: err}
	}
}

func (m LoopBreakerPageModel) Update(msg tea.Msg) (LoopBreakerPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case promptLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to load a prompt, please try again.")
			return m, nil
		}
		m.prompt = msg.prompt
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "n" {
			return m, m.Load()
		}
	}
	return m, nil
}

func (m LoopBreakerPageModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Loop Breaker"))
	sb.WriteString("\n")
	switch {
	case m.loading:
		sb.WriteString(styles.Muted.Render("breaking the loop..."))
	case m.prompt != "":
		sb.WriteString(styles.Card.Render(m.prompt))
	}
	sb.WriteString("\n")
	for _, e := range m.errs {
		sb.WriteString(styles.Error.Render(e))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("n another prompt · esc dashboard"))
	return sb.String()
}

type soulNoteLoadedMsg struct {
	note *api.SoulNote
	err  error
}

// SoulNotesPageModel shows one random affirmation at a time.
type SoulNotesPageModel struct {
	client  *api.Client
	note    *api.SoulNote
	errs    []string
	loading bool
}

func NewSoulNotesPageModel(client *api.Client) SoulNotesPageModel {
	return SoulNotesPageModel{client: client}
}

func (m *SoulNotesPageModel) Load() tea.Cmd {
	m.loading = true
	m.errs = nil
	client := m.client
	return func() tea.Msg {
		note, err := client.RandomSoulNote(context.Background())
		return soulNoteLoadedMsg{note: note, err: err}
	}
}

func (m SoulNotesPageModel) Update(msg tea.Msg) (SoulNotesPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case soulNoteLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to load a soul note, please try again.")
			return m, nil
		}
		m.note = msg.note
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "n" {
			return m, m.Load()
		}
	}
	return m, nil
}

func (m SoulNotesPageModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Soul Notes"))
	sb.WriteString("\n")
	switch {
	case m.loading:
		sb.WriteString(styles.Muted.Render("finding a note for you..."))
	case m.note != nil:
		sb.WriteString(styles.Card.Render(m.note.Message))
		if m.note.Category != "" {
			sb.WriteString("\n")
			sb.WriteString(styles.Muted.Render("· " + m.note.Category))
		}
	}
	sb.WriteString("\n")
	for _, e := range m.errs {
		sb.WriteString(styles.Error.Render(e))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("n another note · esc dashboard"))
	return sb.String()
}

type techniquesLoadedMsg struct {
	techniques []api.Technique
	err        error
}

// BreathGroundPageModel lists grounding techniques.
type BreathGroundPageModel struct {
	client     *api.Client
	techniques []api.Technique
	selected   int
	errs       []string
	loading    bool
}

func NewBreathGroundPageModel(client *api.Client) BreathGroundPageModel {
	return BreathGroundPageModel{client: client}
}

func (m *BreathGroundPageModel) Load() tea.Cmd {
	m.loading = true
	m.errs = nil
	client := m.client
	return func() tea.Msg {
		techniques, err := client.Techniques(context.Background())
		return techniquesLoadedMsg{techniques: techniques, err: err}
	}
}

func (m BreathGroundPageModel) Update(msg tea.Msg) (BreathGroundPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case techniquesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errs = errMessages(msg.err, "Failed to load techniques. Please try again.")
			return m, nil
		}
		m.techniques = msg.techniques
		m.selected = 0
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.techniques)-1 {
				m.selected++
			}
		}
	}
	return m, nil
}

func (m BreathGroundPageModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Breath & Ground"))
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render("Simple techniques to calm your mind and connect with the present moment."))
	sb.WriteString("\n\n")

	switch {
	case m.loading:
		sb.WriteString(styles.Muted.Render("loading techniques..."))
		sb.WriteString("\n")
	case len(m.techniques) == 0 && len(m.errs) == 0:
		sb.WriteString(styles.Muted.Render("No techniques available at the moment."))
		sb.WriteString("\n")
	default:
		for i, tech := range m.techniques {
			name := tech.Name + "  (" + tech.Duration + ")"
			if i == m.selected {
				sb.WriteString(styles.Selected.Render(name))
				sb.WriteString("\n")
				sb.WriteString(styles.Body.Render(tech.Instructions))
			} else {
				sb.WriteString(styles.Header.Render(name))
			}
			sb.WriteString("\n")
		}
	}
	for _, e := range m.errs {
		sb.WriteString(styles.Error.Render(e))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("up/down browse · esc dashboard"))
	return sb.String()
}
