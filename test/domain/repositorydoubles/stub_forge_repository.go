//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
	"github.com/nemo-docs/nemobot/internal/domain/repositories"
)

// StubForgeRepository is a stub implementation of repositories.ForgeRepository.
type StubForgeRepository struct {
	DefaultBranch    string
	DefaultBranchErr error
	ExistingPR       *entities.PullRequest
	FindErr          error
	CreatedPR        *entities.PullRequest
	CreateErr        error

	GetDefaultBranchCallCount int
	FindCallCount             int
	CreateCallCount           int
	LastFindHead              string
	LastFindBase              string
	LastCreateInput           entities.PullRequestInput
}

var _ repositories.ForgeRepository = (*StubForgeRepository)(nil)

func (s *StubForgeRepository) GetDefaultBranch(_ context.Context) (string, error) {
	s.GetDefaultBranchCallCount++
	return s.DefaultBranch, s.DefaultBranchErr
}

func (s *StubForgeRepository) FindOpenPullRequest(_ context.Context, headBranch, baseBranch string) (*entities.PullRequest, error) {
	s.FindCallCount++
	s.LastFindHead = headBranch
	s.LastFindBase = baseBranch
	return s.ExistingPR, s.FindErr
}

func (s *StubForgeRepository) CreatePullRequest(_ context.Context, input entities.PullRequestInput) (*entities.PullRequest, error) {
	s.CreateCallCount++
	s.LastCreateInput = input
	return s.CreatedPR, s.CreateErr
}
