// Package prompt provides interactive prompt functionality for the merge manager.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrSelectionAborted         = errors.New("no selection made")
	ErrNoBranchesAvailable      = errors.New("no branches available")
)
