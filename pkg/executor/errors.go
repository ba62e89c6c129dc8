package executor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Failure kinds for command execution. Check with errors.Is.
var (
	ErrSpawnFailed = errors.New("command could not be spawned")
	ErrNonZeroExit = errors.New("command exited with non-zero status")
	ErrTimeout     = errors.New("command timed out")
)

// CommandError carries the structured detail of a failed command execution.
type CommandError struct {
	Name   string
	Args   []string
	Stdout string
	Stderr string
	Err    error

	kind error
}

// Error returns the human-readable description of the failure.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%v: %s %s", e.kind, e.Name, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += fmt.Sprintf(" (stderr: %s)", strings.TrimSpace(e.Stderr))
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is reports whether the error matches one of the failure kind sentinels.
func (e *CommandError) Is(target error) bool {
	return target == e.kind
}

// Unwrap returns the underlying execution error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// newCommandError classifies a command failure into one of the three kinds.
func newCommandError(ctx context.Context, name string, args []string, result Result, err error) *CommandError {
	kind := ErrSpawnFailed

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		kind = ErrTimeout
	case errors.As(err, &exitErr):
		kind = ErrNonZeroExit
	}

	return &CommandError{
		Name:   name,
		Args:   args,
		Stdout: result.Stdout,
		Stderr: result.Stderr,
		Err:    err,
		kind:   kind,
	}
}
