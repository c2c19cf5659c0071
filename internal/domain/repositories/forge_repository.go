package repositories

import (
	"context"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
)

// ForgeRepository abstracts the Git hosting service's REST API for the
// single repository a run operates on.
type ForgeRepository interface {
	// GetDefaultBranch returns the repository's primary branch name.
	GetDefaultBranch(ctx context.Context) (string, error)

	// FindOpenPullRequest returns the first open pull request for the
	// (head, base) branch pair, or nil when none exists.
	FindOpenPullRequest(ctx context.Context, headBranch, baseBranch string) (*entities.PullRequest, error)

	// CreatePullRequest opens a new pull request and returns it.
	CreatePullRequest(ctx context.Context, input entities.PullRequestInput) (*entities.PullRequest, error)
}
