//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
	"github.com/nemo-docs/nemobot/internal/domain/repositories"
)

// StubArtifactRepository is a stub implementation of repositories.ArtifactRepository.
type StubArtifactRepository struct {
	ProducerName string
	Branch       string
	Message      string
	Title        string
	Body         string
	Artifact     *entities.Artifact
	ProduceErr   error

	ProduceCallCount int
	LastWorkspace    string
}

var _ repositories.ArtifactRepository = (*StubArtifactRepository)(nil)

func (s *StubArtifactRepository) Name() string             { return s.ProducerName }
func (s *StubArtifactRepository) BranchName() string       { return s.Branch }
func (s *StubArtifactRepository) CommitMessage() string    { return s.Message }
func (s *StubArtifactRepository) PullRequestTitle() string { return s.Title }
func (s *StubArtifactRepository) PullRequestBody() string  { return s.Body }

func (s *StubArtifactRepository) Produce(_ context.Context, workspaceDir string) (*entities.Artifact, error) {
	s.ProduceCallCount++
	s.LastWorkspace = workspaceDir
	return s.Artifact, s.ProduceErr
}
