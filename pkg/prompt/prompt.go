package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectBranch prompts the user to select a branch from a list.
	// Dismissing the selector returns ErrSelectionAborted.
	PromptSelectBranch(branches []string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompt instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// NewPromptWithReader creates a new Prompt instance reading from the given reader.
func NewPromptWithReader(r io.Reader) Prompter {
	return &realPrompt{
		reader: bufio.NewReader(r),
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectBranch prompts the user to select a branch from a list.
func (p *realPrompt) PromptSelectBranch(branches []string) (string, error) {
	if len(branches) == 0 {
		return "", ErrNoBranchesAvailable
	}

	// Use Bubble Tea selector for interactive selection
	return promptSelectBranchBubbleTea(branches)
}
