package ui

import "strings"

// homeView is the public landing screen.
func homeView(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("SoulSpace"))
	sb.WriteString("\n")
	sb.WriteString(styles.Body.Render("A quiet corner for the things you carry."))
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("l log in · s sign up · ctrl+t theme · ctrl+c quit"))
	return sb.String()
}

// notFoundView renders for unknown navigation targets.
func notFoundView(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Lost?"))
	sb.WriteString("\n")
	sb.WriteString(styles.Body.Render("There is nothing here."))
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("esc home"))
	return sb.String()
}

// errorView is the terminal full-screen failure state: a static message,
// no retry affordance.
func errorView(styles Styles, message string) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Something went wrong"))
	sb.WriteString("\n")
	sb.WriteString(styles.Error.Render(message))
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render("Restart the app to try again."))
	return sb.String()
}
