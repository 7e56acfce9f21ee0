// Package color provides the semantic terminal styles used for ssoctl's
// status output. Color degradation and NO_COLOR handling are delegated
// to lipgloss.
package color

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boldStyle    = lipgloss.NewStyle().Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
	panelTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

// OK renders a success line ("✓ ...").
func OK(format string, args ...interface{}) string {
	return successStyle.Render("✓") + " " + fmt.Sprintf(format, args...)
}

// Step renders a progress line ("▸ ...").
func Step(format string, args ...interface{}) string {
	return stepStyle.Render("▸") + " " + fmt.Sprintf(format, args...)
}

// Fail renders a failure line ("✗ ...").
func Fail(format string, args ...interface{}) string {
	return errorStyle.Render("✗ " + fmt.Sprintf(format, args...))
}

// Warn renders a warning line ("⚠ ...").
func Warn(format string, args ...interface{}) string {
	return warnStyle.Render("⚠ " + fmt.Sprintf(format, args...))
}

// Muted renders de-emphasized text, used for echoed remote output.
func Muted(format string, args ...interface{}) string {
	return mutedStyle.Render(fmt.Sprintf(format, args...))
}

// Bold renders emphasized text.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Panel renders a titled, bordered block around body.
func Panel(title, body string) string {
	return panelStyle.Render(panelTitleStyle.Render(title) + "\n" + body)
}
