package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
)

type profileCountsMsg struct {
	letters  int
	capsules int
	notes    int
	err      error
}

// ProfilePageModel shows the identity plus a small activity summary.
type ProfilePageModel struct {
	client  *api.Client
	user    *api.User
	counts  *profileCountsMsg
	errs    []string
	loading bool
}

func NewProfilePageModel(client *api.Client) ProfilePageModel {
	return ProfilePageModel{client: client}
}

// Load fetches the three collection sizes in one command.
func (m *ProfilePageModel) Load(user *api.User) tea.Cmd {
	m.user = user
	m.loading = true
	m.errs = nil
	m.counts = nil
	client := m.client
	return func() tea.Msg {
		letters, err := client.Letters().List(context.Background())
		if err != nil {
			return profileCountsMsg{err: err}
		}
		capsules, err := client.TimeCapsules().List(context.Background())
		if err != nil {
			return profileCountsMsg{err: err}
		}
		notes, err := client.UserNotes().List(context.Background())
		if err != nil {
			return profileCountsMsg{err: err}
		}
		return profileCountsMsg{letters: len(letters), capsules: len(capsules), notes: len(notes)}
	}
}

func (m ProfilePageModel) Update(msg tea.Msg) (ProfilePageModel, tea.Cmd) {
	if counts, ok := msg.(profileCountsMsg); ok {
		m.loading = false
		if counts.err != nil {
			m.errs = errMessages(counts.err, "Failed to load your activity, please try again.")
			return m, nil
		}
		m.counts = &counts
	}
	return m, nil
}

func (m ProfilePageModel) View(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Profile"))
	sb.WriteString("\n")
	if m.user != nil {
		sb.WriteString(styles.Header.Render(m.user.Username))
		sb.WriteString("\n")
		sb.WriteString(styles.Body.Render(m.user.Email))
		sb.WriteString("\n")
		sb.WriteString(styles.Muted.Render("here since " + m.user.CreatedAt.Format("January 2, 2006")))
		sb.WriteString("\n\n")
	}
	switch {
	case m.loading:
		sb.WriteString(styles.Muted.Render("loading your activity..."))
		sb.WriteString("\n")
	case m.counts != nil:
		sb.WriteString(styles.Body.Render(fmt.Sprintf("%d letters · %d time capsules · %d notes",
			m.counts.letters, m.counts.capsules, m.counts.notes)))
		sb.WriteString("\n")
	}
	for _, e := range m.errs {
		sb.WriteString(styles.Error.Render(e))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("esc dashboard"))
	return sb.String()
}
