package config

import (
	"fmt"
	"strings"
)

// DefaultTargetBranch is the branch name suggested when initializing a
// configuration from scratch.
const DefaultTargetBranch = "master"

// Config represents the application configuration.
type Config struct {
	// TargetBranch is the branch merges are directed into. Empty means no
	// target has been selected yet.
	TargetBranch string `yaml:"target_branch"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	// An empty target branch is a valid state: none selected yet.
	if c.TargetBranch == "" {
		return nil
	}
	if strings.ContainsAny(c.TargetBranch, " \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidTargetBranch, c.TargetBranch)
	}
	return nil
}
