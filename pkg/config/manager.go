// Package config provides configuration management for the merge manager.
package config

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lerenn/merge-manager/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	SetTargetBranch(branch string) error
	CreateConfigDirectory() error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
	fs         fs.FS
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
		fs:         fs.NewFS(),
	}
}

// NewManagerWithFS creates a new Manager instance with a custom file system.
func NewManagerWithFS(configPath string, filesystem fs.FS) Manager {
	return &realManager{
		configPath: configPath,
		fs:         filesystem,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path,
// falling back to the default configuration when the file is missing.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	if config, err := c.GetConfig(); err == nil {
		return config, nil
	}

	return c.DefaultConfig(), nil
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := c.CreateConfigDirectory(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFileAtomic(c.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// SetTargetBranch persists a new target branch, preserving the rest of the
// configuration.
func (c *realManager) SetTargetBranch(branch string) error {
	config, err := c.GetConfigWithFallback()
	if err != nil {
		return err
	}

	config.TargetBranch = branch
	return c.SaveConfig(config)
}

// CreateConfigDirectory creates the configuration directory structure.
func (c *realManager) CreateConfigDirectory() error {
	configDir := filepath.Dir(c.configPath)
	if err := c.fs.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration. The target branch starts
// out unselected so the first merge prompts the user to pick one.
func (c *realManager) DefaultConfig() Config {
	return Config{}
}
