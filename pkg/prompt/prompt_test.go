//go:build unit

package prompt

import (
	"bufio"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealPrompt_PromptForConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		defaultYes  bool
		input       string
		expected    bool
		expectError bool
	}{
		{
			name:       "yes input",
			defaultYes: false,
			input:      "y\n",
			expected:   true,
		},
		{
			name:       "YES input",
			defaultYes: false,
			input:      "YES\n",
			expected:   true,
		},
		{
			name:       "no input",
			defaultYes: true,
			input:      "n\n",
			expected:   false,
		},
		{
			name:       "empty input uses default yes",
			defaultYes: true,
			input:      "\n",
			expected:   true,
		},
		{
			name:       "empty input uses default no",
			defaultYes: false,
			input:      "\n",
			expected:   false,
		},
		{
			name:        "invalid input",
			defaultYes:  false,
			input:       "maybe\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &realPrompt{
				reader: bufio.NewReader(strings.NewReader(tt.input)),
			}

			result, err := p.PromptForConfirmation("Continue?", tt.defaultYes)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidConfirmationInput)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestRealPrompt_PromptSelectBranch_EmptyList(t *testing.T) {
	p := NewPromptWithReader(strings.NewReader(""))

	_, err := p.PromptSelectBranch(nil)
	assert.ErrorIs(t, err, ErrNoBranchesAvailable)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func applyKeys(t *testing.T, m selectModel, keys ...string) selectModel {
	t.Helper()

	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(keyMsg(k))
	}

	result, ok := model.(selectModel)
	require.True(t, ok)
	return result
}

func TestSelectModel_NavigationAndSelection(t *testing.T) {
	m := initialSelectModel([]string{"develop", "main", "release/1.2"})

	m = applyKeys(t, m, "down", "enter")
	assert.Equal(t, "main", m.selected)
}

func TestSelectModel_CursorStaysInBounds(t *testing.T) {
	m := initialSelectModel([]string{"develop", "main"})

	m = applyKeys(t, m, "up", "down", "down", "down", "enter")
	assert.Equal(t, "main", m.selected)
}

func TestSelectModel_Filtering(t *testing.T) {
	m := initialSelectModel([]string{"develop", "main", "feature/login", "feature/logout"})

	m = applyKeys(t, m, "f", "e", "a")
	assert.Equal(t, []string{"feature/login", "feature/logout"}, m.filteredBranches)

	m = applyKeys(t, m, "down", "enter")
	assert.Equal(t, "feature/logout", m.selected)
}

func TestSelectModel_ClearFilter(t *testing.T) {
	m := initialSelectModel([]string{"develop", "main"})

	m = applyKeys(t, m, "d", "e", "v")
	assert.Len(t, m.filteredBranches, 1)

	m = applyKeys(t, m, "esc")
	assert.Len(t, m.filteredBranches, 2)
}

func TestSelectModel_QuitWithoutSelection(t *testing.T) {
	m := initialSelectModel([]string{"develop", "main"})

	m = applyKeys(t, m, "ctrl+c")
	assert.True(t, m.quitting)
	assert.Empty(t, m.selected)
}

func TestSelectModel_ViewShowsCursor(t *testing.T) {
	m := initialSelectModel([]string{"develop", "main"})

	view := m.View()
	assert.Contains(t, view, "Choose target branch")
	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "main")
}
