package repositories

import (
	"context"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
)

// ArtifactRepository produces the content a run commits, along with the
// fixed branch and pull-request strings for that artifact kind.
//
// Produce returns (nil, nil) when there is nothing to generate (for
// example no completion API key was supplied); the run then exits
// successfully without committing.
type ArtifactRepository interface {
	Name() string
	BranchName() string
	CommitMessage() string
	PullRequestTitle() string
	PullRequestBody() string

	Produce(ctx context.Context, workspaceDir string) (*entities.Artifact, error)
}
