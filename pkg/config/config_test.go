//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{TargetBranch: "develop"},
			wantErr: false,
		},
		{
			name:    "empty target branch is allowed",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "target branch with whitespace",
			config:  Config{TargetBranch: "not a branch"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTargetBranch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRealManager_GetConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("target_branch: develop\n"), 0o644)
	require.NoError(t, err)

	manager := NewManager(configPath)
	config, err := manager.GetConfig()

	assert.NoError(t, err)
	assert.Equal(t, "develop", config.TargetBranch)
}

func TestRealManager_GetConfig_FileNotFound(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotInitialized)
}

func TestRealManager_GetConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("target_branch: [broken\n"), 0o644)
	require.NoError(t, err)

	manager := NewManager(configPath)
	_, err = manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))

	config, err := manager.GetConfigWithFallback()
	assert.NoError(t, err)
	assert.Empty(t, config.TargetBranch)
}

func TestRealManager_SaveConfigRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mm", "config.yaml")
	manager := NewManager(configPath)

	err := manager.SaveConfig(Config{TargetBranch: "main"})
	require.NoError(t, err)

	config, err := manager.GetConfig()
	assert.NoError(t, err)
	assert.Equal(t, "main", config.TargetBranch)
}

func TestRealManager_SetTargetBranch(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	manager := NewManager(configPath)

	// First selection creates the file from the default configuration.
	err := manager.SetTargetBranch("develop")
	require.NoError(t, err)

	config, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "develop", config.TargetBranch)

	// A later selection overwrites the previous one.
	err = manager.SetTargetBranch("main")
	require.NoError(t, err)

	config, err = manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "main", config.TargetBranch)
}

func TestRealManager_SaveConfig_RejectsInvalidBranch(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "config.yaml"))

	err := manager.SaveConfig(Config{TargetBranch: "not a branch"})
	assert.ErrorIs(t, err, ErrInvalidTargetBranch)
}
