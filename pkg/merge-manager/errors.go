// Package mergemanager provides the merge workflow and error definitions.
package mergemanager

import "errors"

// Error definitions for the merge manager package.
var (
	// Environment errors.
	ErrGitNotFound       = errors.New("git executable not found on PATH")
	ErrNotAGitRepository = errors.New("not a git repository")

	// Merge precondition errors.
	ErrNoTargetBranch         = errors.New("no target branch selected, run 'mm target' first")
	ErrCannotMergeIntoCurrent = errors.New("already on the target branch, nothing to merge")
	ErrUncommittedChanges     = errors.New("working tree has uncommitted changes, commit or stash them first")

	// Branch inventory errors.
	ErrNoBranchesFound = errors.New("no branches found in repository")
)
