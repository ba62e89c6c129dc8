// Package dependencies provides a centralized dependency container for the
// merge manager. It groups related dependencies together and provides a
// fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/merge-manager/pkg/config"
	"github.com/lerenn/merge-manager/pkg/executor"
	"github.com/lerenn/merge-manager/pkg/forge"
	"github.com/lerenn/merge-manager/pkg/fs"
	"github.com/lerenn/merge-manager/pkg/git"
	"github.com/lerenn/merge-manager/pkg/hooks"
	"github.com/lerenn/merge-manager/pkg/logger"
	"github.com/lerenn/merge-manager/pkg/prompt"
	"github.com/lerenn/merge-manager/pkg/statusbar"
)

// Validation errors for missing dependencies.
var (
	ErrExecutorMissing     = errors.New("executor dependency is required but not set")
	ErrFSMissing           = errors.New("fs dependency is required but not set")
	ErrGitMissing          = errors.New("git dependency is required but not set")
	ErrConfigMissing       = errors.New("config dependency is required but not set")
	ErrLoggerMissing       = errors.New("logger dependency is required but not set")
	ErrPromptMissing       = errors.New("prompt dependency is required but not set")
	ErrStatusBarMissing    = errors.New("status bar dependency is required but not set")
	ErrForgeManagerMissing = errors.New("forge manager dependency is required but not set")
	ErrHookManagerMissing  = errors.New("hook manager dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	Executor     executor.Executor
	FS           fs.FS
	Git          git.Git
	Config       config.Manager
	Logger       logger.Logger
	Prompt       prompt.Prompter
	StatusBar    statusbar.StatusBar
	ForgeManager forge.ManagerInterface
	HookManager  hooks.HookManagerInterface
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	log := logger.NewNoopLogger()
	exec := executor.NewExecutor()

	return &Dependencies{
		Executor:     exec,
		FS:           fs.NewFS(),
		Git:          git.NewGitWithExecutor(exec),
		Logger:       log,
		Prompt:       prompt.NewPrompt(),
		StatusBar:    statusbar.NewStatusBar(),
		ForgeManager: forge.NewManager(log),
		HookManager:  hooks.NewHookManager(),
		// Config is intentionally left nil as it requires a config path.
	}
}

// WithExecutor sets the command executor and returns the instance for
// chaining. Git is rebuilt on top of the new executor.
func (d *Dependencies) WithExecutor(exec executor.Executor) *Dependencies {
	d.Executor = exec
	d.Git = git.NewGitWithExecutor(exec)
	return d
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithStatusBar sets the status bar and returns the instance for chaining.
func (d *Dependencies) WithStatusBar(sb statusbar.StatusBar) *Dependencies {
	d.StatusBar = sb
	return d
}

// WithForgeManager sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForgeManager(fm forge.ManagerInterface) *Dependencies {
	d.ForgeManager = fm
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.Executor, ErrExecutorMissing},
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.StatusBar, ErrStatusBarMissing},
		{d.ForgeManager, ErrForgeManagerMissing},
		{d.HookManager, ErrHookManagerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
