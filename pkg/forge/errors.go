// Package forge provides integrations with code hosting platforms.
package forge

import "errors"

// Forge-specific errors
var (
	ErrUnsupportedForge    = errors.New("unsupported forge")
	ErrPullRequestNotFound = errors.New("no open pull request found")
	ErrRateLimited         = errors.New("rate limited by forge API")
	ErrUnauthorized        = errors.New("unauthorized access to forge API")
	ErrNotAForgeRepository = errors.New("repository remote does not match forge")
)
