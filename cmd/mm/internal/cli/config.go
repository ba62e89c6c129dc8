// Package cli provides common configuration and utility functions for the mm CLI.
package cli

import (
	"path/filepath"

	"github.com/lerenn/merge-manager/pkg/config"
	"github.com/lerenn/merge-manager/pkg/fs"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(GetConfigPath())
}

// GetConfigPath returns the config file path the CLI operates on, with ~
// expanded to the user's home directory.
func GetConfigPath() string {
	filesystem := fs.NewFS()

	if ConfigPath != "" {
		expanded, err := filesystem.ExpandPath(ConfigPath)
		if err != nil {
			return ConfigPath
		}
		return expanded
	}

	homeDir, err := filesystem.GetHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".mm", "config.yaml")
}
