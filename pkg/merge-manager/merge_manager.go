package mergemanager

import (
	"fmt"

	"github.com/lerenn/merge-manager/pkg/dependencies"
	"github.com/lerenn/merge-manager/pkg/hooks"
	"github.com/lerenn/merge-manager/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=merge_manager.go -destination=mocks/merge_manager.gen.go -package=mocks

// MergeManager interface provides the branch merge workflow.
type MergeManager interface {
	// SelectTargetBranch selects and persists the target branch. An empty
	// branch argument triggers interactive selection.
	SelectTargetBranch(branch string) error
	// MergeIntoTarget merges the current branch into the persisted target branch.
	MergeIntoTarget() error
	// ListBranches returns the branch inventory together with the current
	// and target branches.
	ListBranches() (BranchListing, error)
	// Init creates the configuration file with an initial target branch.
	Init(branch string) error
	// SetLogger sets the logger for this MergeManager instance.
	SetLogger(logger logger.Logger)
}

// NewMergeManagerParams contains parameters for creating a new MergeManager instance.
type NewMergeManagerParams struct {
	Dependencies *dependencies.Dependencies
	// RepositoryPath is the repository the manager operates on. Defaults to
	// the current directory.
	RepositoryPath string
	Verbose        bool
}

type realMergeManager struct {
	deps     *dependencies.Dependencies
	repoPath string
	verbose  bool
}

// NewMergeManager creates a new MergeManager instance.
func NewMergeManager(params NewMergeManagerParams) (MergeManager, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	repoPath := params.RepositoryPath
	if repoPath == "" {
		repoPath = "."
	}

	return &realMergeManager{
		deps:     deps,
		repoPath: repoPath,
		verbose:  params.Verbose,
	}, nil
}

// VerbosePrint logs a formatted message only in verbose mode.
func (m *realMergeManager) VerbosePrint(msg string, args ...interface{}) {
	if m.verbose && m.deps.Logger != nil {
		m.deps.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// SetLogger sets the logger for this MergeManager instance.
func (m *realMergeManager) SetLogger(logger logger.Logger) {
	m.deps.Logger = logger
}

// ensureGitAvailable checks that the git executable is reachable on PATH.
func (m *realMergeManager) ensureGitAvailable() error {
	if _, err := m.deps.FS.Which("git"); err != nil {
		return fmt.Errorf("%w: %w", ErrGitNotFound, err)
	}
	return nil
}

// executeWithHooks executes an operation with pre and post hooks.
func (m *realMergeManager) executeWithHooks(
	operationName string, params map[string]interface{}, operation func() error) error {
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}
	// Execute pre-hooks (if hook manager is available)
	if err := m.executePreHooks(operationName, ctx); err != nil {
		return err
	}
	// Execute operation
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		resultErr = operation()
	}()
	// Update context with results
	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["success"] = true
	}
	// Execute post-hooks or error-hooks (if hook manager is available)
	if hookErr := m.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return hookErr
	}
	return resultErr
}

// executeWithHooksAndReturnListing executes an operation with pre and post
// hooks that returns a branch listing.
func (m *realMergeManager) executeWithHooksAndReturnListing(
	operationName string,
	params map[string]interface{},
	operation func() (BranchListing, error),
) (BranchListing, error) {
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}
	// Execute pre-hooks (if hook manager is available)
	if err := m.executePreHooks(operationName, ctx); err != nil {
		return BranchListing{}, err
	}
	// Execute operation
	var listing BranchListing
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		listing, resultErr = operation()
	}()
	// Update context with results
	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["branches"] = listing.Branches
		ctx.Results["success"] = true
	}
	// Execute post-hooks or error-hooks (if hook manager is available)
	if hookErr := m.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return BranchListing{}, hookErr
	}
	return listing, resultErr
}

// executeHooks executes post-hooks or error-hooks based on the operation result.
func (m *realMergeManager) executeHooks(operationName string, ctx *hooks.HookContext, resultErr error) error {
	if m.deps.HookManager == nil {
		return nil
	}

	if resultErr != nil {
		return m.deps.HookManager.ExecuteErrorHooks(operationName, ctx)
	}
	return m.deps.HookManager.ExecutePostHooks(operationName, ctx)
}

// executePreHooks executes pre-hooks if hook manager is available.
func (m *realMergeManager) executePreHooks(operationName string, ctx *hooks.HookContext) error {
	if m.deps.HookManager == nil {
		return nil
	}
	return m.deps.HookManager.ExecutePreHooks(operationName, ctx)
}
