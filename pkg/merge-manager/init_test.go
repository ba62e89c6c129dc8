//go:build unit

package mergemanager

import (
	"testing"

	"github.com/lerenn/merge-manager/pkg/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_DefaultsToMaster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)

	m.config.EXPECT().DefaultConfig().Return(config.Config{})
	m.config.EXPECT().SaveConfig(config.Config{TargetBranch: "master"}).Return(nil)
	m.config.EXPECT().GetConfigPath().Return("/home/user/.mm/config.yaml").AnyTimes()

	assert.NoError(t, mm.Init(""))
}

func TestInit_ExplicitBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mm, m := newTestMergeManager(t, ctrl)

	m.config.EXPECT().DefaultConfig().Return(config.Config{})
	m.config.EXPECT().SaveConfig(config.Config{TargetBranch: "develop"}).Return(nil)
	m.config.EXPECT().GetConfigPath().Return("/home/user/.mm/config.yaml").AnyTimes()

	assert.NoError(t, mm.Init("develop"))
}
