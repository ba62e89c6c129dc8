//go:build unit

package logger

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger_Logf(t *testing.T) {
	logger := NewNoopLogger()

	// Should not panic or produce any output.
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
}

func TestDefaultLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	logger.Logf("merging %s into %s", "feature/login", "develop")

	assert.Equal(t, "merging feature/login into develop\n", buf.String())
}

func TestDefaultLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Logf("concurrent message from goroutine %d", id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("\n")))
}
