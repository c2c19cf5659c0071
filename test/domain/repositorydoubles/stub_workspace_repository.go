//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/nemo-docs/nemobot/internal/domain/repositories"
)

// StubWorkspaceRepository is a stub implementation of repositories.WorkspaceRepository.
type StubWorkspaceRepository struct {
	IsRepo             bool
	IsRepoErr          error
	EnsureCloneErr     error
	ConfigureErr       error
	SetRemoteErr       error
	ConvergeErr        error
	HasChanges         bool
	HasChangesErr      error
	CommitErr          error
	PushErr            error

	EnsureCloneCallCount int
	ConvergeCallCount    int
	CommitCallCount      int
	PushCallCount        int

	ConfiguredActor string
	ConvergedBase   string
	ConvergedWork   string
	CommittedPaths  []string
	CommitMessage   string
	PushedBranch    string
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) IsRepository(_ context.Context, _ string) (bool, error) {
	return s.IsRepo, s.IsRepoErr
}

func (s *StubWorkspaceRepository) EnsureClone(_ context.Context, _, _, _, _ string) error {
	s.EnsureCloneCallCount++
	return s.EnsureCloneErr
}

func (s *StubWorkspaceRepository) ConfigureIdentity(_ context.Context, _, actor string) error {
	s.ConfiguredActor = actor
	return s.ConfigureErr
}

func (s *StubWorkspaceRepository) SetAuthenticatedRemote(_ context.Context, _, _, _ string) error {
	return s.SetRemoteErr
}

func (s *StubWorkspaceRepository) ConvergeWorkBranch(_ context.Context, _, baseBranch, workBranch string) error {
	s.ConvergeCallCount++
	s.ConvergedBase = baseBranch
	s.ConvergedWork = workBranch
	return s.ConvergeErr
}

func (s *StubWorkspaceRepository) HasPendingChanges(_ context.Context, _ string) (bool, error) {
	return s.HasChanges, s.HasChangesErr
}

func (s *StubWorkspaceRepository) CommitPaths(_ context.Context, _ string, paths []string, message string) error {
	s.CommitCallCount++
	s.CommittedPaths = paths
	s.CommitMessage = message
	return s.CommitErr
}

func (s *StubWorkspaceRepository) PushBranch(_ context.Context, _, branch string) error {
	s.PushCallCount++
	s.PushedBranch = branch
	return s.PushErr
}
