// Package git provides Git operations and error definitions.
package git

import "errors"

const defaultRemote = "origin"

// Git-specific error types.
var (
	ErrNoCurrentBranch = errors.New("no branch currently checked out")
	ErrCheckoutFailed  = errors.New("failed to checkout branch")
	ErrPullFailed      = errors.New("failed to pull branch")
	ErrMergeFailed     = errors.New("failed to merge branch")
	ErrPushFailed      = errors.New("failed to push branch")
)
