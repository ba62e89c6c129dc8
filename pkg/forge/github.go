package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/merge-manager/pkg/git"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"
	// apiTimeout bounds every GitHub API call.
	apiTimeout = 10 * time.Second
)

var (
	httpsRemoteRegexp = regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?$`)
	sshRemoteRegexp   = regexp.MustCompile(`github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
	git    git.Git
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	var client *github.Client

	// Add authentication if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{
		client: client,
		git:    git.NewGit(),
	}
}

// NewGitHubWithGit creates a new GitHub forge instance with a custom git backend.
func NewGitHubWithGit(g git.Git) *GitHub {
	forge := NewGitHub()
	forge.git = g
	return forge
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// ValidateForgeRepository validates that repository has GitHub remote origin.
func (g *GitHub) ValidateForgeRepository(repoPath string) error {
	originURL, err := g.git.GetRemoteURL(repoPath, "origin")
	if err != nil {
		return fmt.Errorf("failed to get remote origin: %w", err)
	}

	// Both HTTPS (https://github.com/owner/repo.git) and SSH
	// (git@github.com:owner/repo.git) URLs contain the domain.
	if !strings.Contains(originURL, GitHubDomain) {
		return fmt.Errorf("%w: %s", ErrNotAForgeRepository, originURL)
	}

	return nil
}

// FindPullRequest looks up an open pull request from source into target.
func (g *GitHub) FindPullRequest(repoPath, sourceBranch, targetBranch string) (*PullRequestInfo, error) {
	owner, repo, err := g.repositoryFromRemote(repoPath)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
	defer cancel()

	prs, resp, err := g.client.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		State: "open",
		Head:  fmt.Sprintf("%s:%s", owner, sourceBranch),
		Base:  targetBranch,
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp)
	}

	if len(prs) == 0 {
		return nil, fmt.Errorf("%w: %s into %s", ErrPullRequestNotFound, sourceBranch, targetBranch)
	}

	pr := prs[0]
	return &PullRequestInfo{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		URL:    pr.GetHTMLURL(),
	}, nil
}

// repositoryFromRemote extracts owner and repository name from the origin URL.
func (g *GitHub) repositoryFromRemote(repoPath string) (string, string, error) {
	originURL, err := g.git.GetRemoteURL(repoPath, "origin")
	if err != nil {
		return "", "", fmt.Errorf("failed to get remote origin: %w", err)
	}

	owner, repo, err := parseGitHubRemote(originURL)
	if err != nil {
		return "", "", err
	}
	return owner, repo, nil
}

// parseGitHubRemote extracts owner and repository from a GitHub remote URL.
func parseGitHubRemote(originURL string) (string, string, error) {
	var matches []string
	switch {
	case strings.Contains(originURL, "https://"+GitHubDomain+"/"):
		matches = httpsRemoteRegexp.FindStringSubmatch(originURL)
	case strings.Contains(originURL, "git@"+GitHubDomain+":"):
		matches = sshRemoteRegexp.FindStringSubmatch(originURL)
	}

	if len(matches) != 3 {
		return "", "", fmt.Errorf("%w: %s", ErrNotAForgeRepository, originURL)
	}
	return matches[1], matches[2], nil
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to list pull requests: %w", err)
}
