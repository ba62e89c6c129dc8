// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	// Target branch operations.
	SelectTargetBranch = "SelectTargetBranch"

	// Merge operations.
	MergeIntoTarget = "MergeIntoTarget"

	// Branch listing operations.
	ListBranches = "ListBranches"

	// Initialization operations.
	Init = "Init"
)
