package mergemanager

import (
	"fmt"

	"github.com/lerenn/merge-manager/pkg/config"
	"github.com/lerenn/merge-manager/pkg/merge-manager/consts"
)

// Init creates the configuration file with an initial target branch. An empty
// branch argument falls back to the default target branch.
func (m *realMergeManager) Init(branch string) error {
	return m.executeWithHooks(consts.Init, map[string]interface{}{
		"branch": branch,
	}, func() error {
		return m.initConfig(branch)
	})
}

func (m *realMergeManager) initConfig(branch string) error {
	if branch == "" {
		branch = config.DefaultTargetBranch
	}

	cfg := m.deps.Config.DefaultConfig()
	cfg.TargetBranch = branch

	if err := m.deps.Config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	m.deps.StatusBar.SetIdle(fmt.Sprintf("target: %s", branch))
	m.VerbosePrint("Initialized configuration at %s with target branch %s",
		m.deps.Config.GetConfigPath(), branch)

	return nil
}
