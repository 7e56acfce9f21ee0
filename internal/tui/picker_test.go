package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickerSelectsHighlightedProfile(t *testing.T) {
	m := newPickerModel([]string{"default", "prod-admin", "staging"})

	// Move down once, then confirm.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(pickerModel)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(pickerModel)

	require.NotNil(t, cmd, "enter should quit the program")
	assert.Equal(t, "prod-admin", m.choice)
}

func TestPickerEscapeLeavesNoChoice(t *testing.T) {
	m := newPickerModel([]string{"default"})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(pickerModel)

	require.NotNil(t, cmd)
	assert.Empty(t, m.choice)
}
