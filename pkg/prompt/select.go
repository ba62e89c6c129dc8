package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var selectedStyle = lipgloss.NewStyle().Bold(true)

// selectModel represents the Bubble Tea model for branch selection.
type selectModel struct {
	branches         []string
	filteredBranches []string
	cursor           int
	filter           string
	selected         string
	quitting         bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(branches []string) selectModel {
	return selectModel{
		branches:         branches,
		filteredBranches: branches,
		cursor:           0,
		filter:           "",
		selected:         "",
		quitting:         false,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m *selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.handleSpecialKeys(key) {
		return m, tea.Quit
	}

	m.handleNavigationKeys(key)
	m.handleFilterKeys(key)

	return m, nil
}

// handleSpecialKeys handles special keys that cause the program to quit.
func (m *selectModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return true
	case "enter":
		if len(m.filteredBranches) > 0 && m.cursor < len(m.filteredBranches) {
			m.selected = m.filteredBranches[m.cursor]
			return true
		}
	}
	return false
}

// handleNavigationKeys handles navigation keys (up/down).
func (m *selectModel) handleNavigationKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filteredBranches)-1 {
			m.cursor++
		}
	}
}

// handleFilterKeys handles filter-related keys.
func (m *selectModel) handleFilterKeys(key string) {
	switch key {
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredBranches()
		}
	case "esc":
		m.filter = ""
		m.updateFilteredBranches()
	default:
		// Regular character input extends the filter
		if len(key) == 1 {
			m.filter += key
			m.updateFilteredBranches()
		}
	}
}

// updateFilteredBranches updates the filtered branches based on the current filter.
func (m *selectModel) updateFilteredBranches() {
	if m.filter == "" {
		m.filteredBranches = m.branches
	} else {
		m.filteredBranches = []string{}

		filterLower := strings.ToLower(m.filter)
		for _, branch := range m.branches {
			if strings.Contains(strings.ToLower(branch), filterLower) {
				m.filteredBranches = append(m.filteredBranches, branch)
			}
		}
	}

	// Reset cursor if it's out of bounds
	if m.cursor >= len(m.filteredBranches) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString("? Choose target branch:  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, branch := range m.filteredBranches {
		if m.cursor == i {
			s.WriteString(fmt.Sprintf("> %s\n", selectedStyle.Render(branch)))
		} else {
			s.WriteString(fmt.Sprintf("  %s\n", branch))
		}
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// promptSelectBranchBubbleTea runs the Bubble Tea program for branch selection.
func promptSelectBranchBubbleTea(branches []string) (string, error) {
	p := tea.NewProgram(initialSelectModel(branches))

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}

	// User quit without selecting
	if model.selected == "" {
		return "", ErrSelectionAborted
	}

	return model.selected, nil
}
