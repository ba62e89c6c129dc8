// Package statusbar renders the persistent merge status line in the terminal.
package statusbar

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=statusbar.go -destination=mocks/statusbar.gen.go -package=mocks

var (
	textStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	hintStyle = lipgloss.NewStyle().Faint(true)
	idleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// StatusBar interface provides status line updates during a merge run.
type StatusBar interface {
	// SetText displays the main status text with an optional hint.
	SetText(text, hint string)

	// SetIdle displays a muted idle message.
	SetIdle(text string)

	// Reset clears the status line.
	Reset()
}

type realStatusBar struct {
	mu  sync.Mutex
	out io.Writer
}

// NewStatusBar creates a new StatusBar writing to stderr so status output
// never mixes with command results on stdout.
func NewStatusBar() StatusBar {
	return &realStatusBar{out: os.Stderr}
}

// NewStatusBarWithWriter creates a StatusBar writing to the given writer.
func NewStatusBarWithWriter(out io.Writer) StatusBar {
	return &realStatusBar{out: out}
}

// SetText displays the main status text with an optional hint.
func (s *realStatusBar) SetText(text, hint string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := textStyle.Render(text)
	if hint != "" {
		line += " " + hintStyle.Render(hint)
	}
	fmt.Fprintf(s.out, "\r\033[K%s", line)
}

// SetIdle displays a muted idle message.
func (s *realStatusBar) SetIdle(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.out, "\r\033[K%s", idleStyle.Render(text))
}

// Reset clears the status line.
func (s *realStatusBar) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprint(s.out, "\r\033[K")
}
