// Package executor provides command execution with timeout handling for the MM application.
package executor

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=executor.go -destination=mocks/executor.gen.go -package=mocks

// DefaultCommandTimeout is applied when the caller's context carries no deadline.
const DefaultCommandTimeout = 1 * time.Minute

// Result holds the captured output streams of a completed command.
type Result struct {
	Stdout string
	Stderr string
}

// Executor interface provides child process execution capabilities.
type Executor interface {
	// Execute runs a command rooted at workDir and returns its captured output.
	// A command that exits non-zero, times out or cannot be spawned returns a
	// *CommandError distinguishing the failure kind.
	Execute(ctx context.Context, workDir, name string, args ...string) (Result, error)
}

type realExecutor struct {
	// No fields needed for basic command execution
}

// NewExecutor creates a new Executor instance.
func NewExecutor() Executor {
	return &realExecutor{}
}

// Execute runs a command rooted at workDir and returns its captured output.
func (e *realExecutor) Execute(ctx context.Context, workDir, name string, args ...string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if workDir != "" {
		cmd.Dir = workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return result, newCommandError(ctx, name, args, result, err)
	}

	return result, nil
}
