package forge

import (
	"fmt"

	"github.com/lerenn/merge-manager/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// PullRequestInfo holds the pull request details shown alongside a merge
// confirmation.
type PullRequestInfo struct {
	Number int
	Title  string
	URL    string
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// ValidateForgeRepository validates that repository has supported forge remote origin
	ValidateForgeRepository(repoPath string) error

	// FindPullRequest looks up an open pull request from source into target.
	// Returns ErrPullRequestNotFound when none exists.
	FindPullRequest(repoPath, sourceBranch, targetBranch string) (*PullRequestInfo, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name
	GetForge(name string) (Forge, error)
	// GetForgeForRepository returns the appropriate forge for the given repository
	GetForgeForRepository(repoPath string) (Forge, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(logger logger.Logger) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	m.registerForges()

	return m
}

// registerForges registers all available forge implementations.
func (m *Manager) registerForges() {
	github := NewGitHub()
	m.forges[github.Name()] = github
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// GetForgeForRepository returns the appropriate forge for the given repository.
func (m *Manager) GetForgeForRepository(repoPath string) (Forge, error) {
	for _, forge := range m.forges {
		if err := forge.ValidateForgeRepository(repoPath); err == nil {
			return forge, nil
		}
	}
	return nil, fmt.Errorf("%w: no supported forge found for repository", ErrUnsupportedForge)
}
