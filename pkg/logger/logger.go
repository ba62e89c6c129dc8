// Package logger provides logging functionality for the merge manager.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to a writer.
type defaultLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return &defaultLogger{out: os.Stdout}
}

// NewLoggerWithWriter creates a logger writing to the given writer.
func NewLoggerWithWriter(out io.Writer) Logger {
	return &defaultLogger{out: out}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format+"\n", args...)
}
