package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrInvalidTargetBranch = errors.New("target_branch contains invalid characters")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("configuration not found")
)
