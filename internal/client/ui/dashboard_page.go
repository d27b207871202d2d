package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// navigateMsg asks the root model to switch pages.
type navigateMsg struct {
	page page
}

type dashboardEntry struct {
	title       string
	description string
	target      page
}

var dashboardEntries = []dashboardEntry{
	{"Letters Unsent", "Write the letters you never sent.", pageLetters},
	{"Time Capsules", "Seal a message for your future self.", pageCapsules},
	{"Quiet Page", "A private space to let it all out.", pageQuiet},
	{"Loop Breaker", "A prompt to redirect spiraling thoughts.", pageLoopBreaker},
	{"Soul Notes", "A small affirmation when you need one.", pageSoulNotes},
	{"Breath & Ground", "Simple breathing techniques.", pageBreathGround},
	{"Profile", "Your account and activity.", pageProfile},
}

// DashboardPageModel is the authenticated landing menu.
type DashboardPageModel struct {
	selected int
	username string
}

func NewDashboardPageModel() DashboardPageModel {
	return DashboardPageModel{}
}

func (m *DashboardPageModel) SetUsername(name string) {
	m.username = name
}

func (m DashboardPageModel) Update(msg tea.Msg) (DashboardPageModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(dashboardEntries)-1 {
			m.selected++
		}
	case "enter":
		target := dashboardEntries[m.selected].target
		return m, func() tea.Msg { return navigateMsg{page: target} }
	}
	return m, nil
}

func (m DashboardPageModel) View(styles Styles) string {
	var sb strings.Builder
	title := "Your Space"
	if m.username != "" {
		title = "Welcome, " + m.username
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")
	for i, entry := range dashboardEntries {
		if i == m.selected {
			sb.WriteString(styles.Selected.Render("> " + entry.title))
			sb.WriteString("\n")
			sb.WriteString(styles.Muted.Render("  " + entry.description))
		} else {
			sb.WriteString(styles.Body.Render("  " + entry.title))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("enter open · up/down move · ctrl+t theme · ctrl+x log out · ctrl+c quit"))
	return sb.String()
}
