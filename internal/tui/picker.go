// Package tui implements the interactive profile picker shown when no
// profile argument is given. It is a thin selection surface with no
// coordination logic; the resolved profile name is handed to the run.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrNoSelection is returned when the user leaves the picker without
// choosing a profile.
var ErrNoSelection = errors.New("no profile selected")

type profileItem string

func (i profileItem) Title() string       { return string(i) }
func (i profileItem) Description() string { return "" }
func (i profileItem) FilterValue() string { return string(i) }

type pickerModel struct {
	list   list.Model
	choice string
}

func newPickerModel(profiles []string) pickerModel {
	items := make([]list.Item, len(profiles))
	for i, p := range profiles {
		items[i] = profileItem(p)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select an AWS profile"
	l.SetShowStatusBar(false)
	l.Styles.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(profileItem); ok {
				m.choice = string(item)
			}
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// SelectProfile runs the picker over the given profile names and returns
// the chosen one.
func SelectProfile(profiles []string) (string, error) {
	p := tea.NewProgram(newPickerModel(profiles), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("profile picker failed: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok || m.choice == "" {
		return "", ErrNoSelection
	}
	return m.choice, nil
}
