// Package fs provides file system operations behind a mockable interface.
package fs

//go:generate go run go.uber.org/mock/mockgen@latest  -source=fs.go -destination=mocks/fs.gen.go -package=mocks

import "os"

// FS interface provides the file system operations the tool relies on.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// ExpandPath expands ~ to the user's home directory.
	ExpandPath(path string) (string, error)

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
