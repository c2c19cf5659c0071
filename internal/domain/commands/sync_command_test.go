//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemo-docs/nemobot/internal/domain/commands"
	"github.com/nemo-docs/nemobot/internal/domain/entities"
	infraRepos "github.com/nemo-docs/nemobot/internal/infrastructure/repositories"
	builders "github.com/nemo-docs/nemobot/test/domain/entitybuilders"
	doubles "github.com/nemo-docs/nemobot/test/domain/repositorydoubles"
)

func newTestSettings() *entities.Settings {
	return &entities.Settings{
		Token:      "test-token",
		Repository: "myorg/myrepo",
		Actor:      "automation",
	}
}

func newCountProducer(artifact *entities.Artifact, produceErr error) *doubles.StubArtifactRepository {
	return &doubles.StubArtifactRepository{
		ProducerName: "count",
		Branch:       "nemo-docs/file-count-update",
		Message:      "chore: Update file_count",
		Title:        "chore: Update file_count",
		Body:         "Automated file count.",
		Artifact:     artifact,
		ProduceErr:   produceErr,
	}
}

func newRegistry(producer *doubles.StubArtifactRepository) *infraRepos.ArtifactRegistry {
	registry := infraRepos.NewArtifactRegistry()
	registry.Register(producer)
	return registry
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSyncCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should create a pull request when changes exist and none is open", func(t *testing.T) {
		t.Parallel()

		// given
		workspaceDir := t.TempDir()
		artifact := builders.NewArtifactBuilder().WithPath("file_count").WithContent("42").BuildArtifact()
		producer := newCountProducer(artifact, nil)
		workspace := &doubles.StubWorkspaceRepository{HasChanges: true}
		forge := &doubles.StubForgeRepository{
			DefaultBranch: "main",
			CreatedPR:     &entities.PullRequest{ID: 3, URL: "https://example.com/pr/3"},
		}

		cmd := commands.NewSyncCommand(newTestSettings(), forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: workspaceDir,
			ArtifactKind: "count",
		})

		// then
		require.NoError(t, err)

		written, readErr := os.ReadFile(filepath.Join(workspaceDir, "file_count"))
		require.NoError(t, readErr)
		assert.Equal(t, "42", string(written))

		assert.Equal(t, 1, workspace.EnsureCloneCallCount)
		assert.Equal(t, "automation", workspace.ConfiguredActor)
		assert.Equal(t, "main", workspace.ConvergedBase)
		assert.Equal(t, "nemo-docs/file-count-update", workspace.ConvergedWork)

		assert.Equal(t, 1, workspace.CommitCallCount)
		assert.Equal(t, []string{"file_count"}, workspace.CommittedPaths)
		assert.Equal(t, "chore: Update file_count", workspace.CommitMessage)

		assert.Equal(t, 1, workspace.PushCallCount)
		assert.Equal(t, "nemo-docs/file-count-update", workspace.PushedBranch)

		assert.Equal(t, 1, forge.CreateCallCount)
		assert.Equal(t, "refs/heads/nemo-docs/file-count-update", forge.LastCreateInput.SourceBranch)
		assert.Equal(t, "refs/heads/main", forge.LastCreateInput.TargetBranch)
		assert.Equal(t, "chore: Update file_count", forge.LastCreateInput.Title)
	})

	t.Run("should reuse an already-open pull request", func(t *testing.T) {
		t.Parallel()

		// given
		workspaceDir := t.TempDir()
		artifact := builders.NewArtifactBuilder().BuildArtifact()
		producer := newCountProducer(artifact, nil)
		workspace := &doubles.StubWorkspaceRepository{HasChanges: true}
		forge := &doubles.StubForgeRepository{
			DefaultBranch: "main",
			ExistingPR:    &entities.PullRequest{ID: 7, URL: "https://example.com/pr/7"},
		}

		cmd := commands.NewSyncCommand(newTestSettings(), forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: workspaceDir,
			ArtifactKind: "count",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, workspace.PushCallCount)
		assert.Equal(t, 1, forge.FindCallCount)
		assert.Zero(t, forge.CreateCallCount)
		assert.Equal(t, "nemo-docs/file-count-update", forge.LastFindHead)
		assert.Equal(t, "main", forge.LastFindBase)
	})

	t.Run("should be a no-op when the working tree shows no changes", func(t *testing.T) {
		t.Parallel()

		// given
		workspaceDir := t.TempDir()
		artifact := builders.NewArtifactBuilder().BuildArtifact()
		producer := newCountProducer(artifact, nil)
		workspace := &doubles.StubWorkspaceRepository{HasChanges: false}
		forge := &doubles.StubForgeRepository{DefaultBranch: "main"}

		cmd := commands.NewSyncCommand(newTestSettings(), forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: workspaceDir,
			ArtifactKind: "count",
		})

		// then
		require.NoError(t, err)
		assert.Zero(t, workspace.CommitCallCount)
		assert.Zero(t, workspace.PushCallCount)
		assert.Zero(t, forge.FindCallCount)
		assert.Zero(t, forge.CreateCallCount)
	})

	t.Run("should exit successfully when artifact production fails", func(t *testing.T) {
		t.Parallel()

		// given
		workspaceDir := t.TempDir()
		producer := newCountProducer(nil, errors.New("completion unreachable"))
		workspace := &doubles.StubWorkspaceRepository{HasChanges: true}
		forge := &doubles.StubForgeRepository{DefaultBranch: "main"}

		cmd := commands.NewSyncCommand(newTestSettings(), forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: workspaceDir,
			ArtifactKind: "count",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, workspace.ConvergeCallCount)
		assert.Zero(t, workspace.CommitCallCount)
		assert.Zero(t, workspace.PushCallCount)
		assert.Zero(t, forge.CreateCallCount)
		assert.NoFileExists(t, filepath.Join(workspaceDir, "file_count"))
	})

	t.Run("should exit successfully when the producer yields nothing", func(t *testing.T) {
		t.Parallel()

		// given
		workspaceDir := t.TempDir()
		producer := newCountProducer(nil, nil)
		workspace := &doubles.StubWorkspaceRepository{HasChanges: true}
		forge := &doubles.StubForgeRepository{DefaultBranch: "main"}

		cmd := commands.NewSyncCommand(newTestSettings(), forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: workspaceDir,
			ArtifactKind: "count",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, producer.ProduceCallCount)
		assert.Zero(t, workspace.CommitCallCount)
		assert.Zero(t, forge.CreateCallCount)
	})

	t.Run("should prefer the default branch override to a live lookup", func(t *testing.T) {
		t.Parallel()

		// given
		workspaceDir := t.TempDir()
		settings := newTestSettings()
		settings.DefaultBranch = "develop"
		artifact := builders.NewArtifactBuilder().BuildArtifact()
		producer := newCountProducer(artifact, nil)
		workspace := &doubles.StubWorkspaceRepository{HasChanges: true}
		forge := &doubles.StubForgeRepository{
			DefaultBranch: "main",
			CreatedPR:     &entities.PullRequest{ID: 1, URL: "https://example.com/pr/1"},
		}

		cmd := commands.NewSyncCommand(settings, forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: workspaceDir,
			ArtifactKind: "count",
		})

		// then
		require.NoError(t, err)
		assert.Zero(t, forge.GetDefaultBranchCallCount)
		assert.Equal(t, "develop", workspace.ConvergedBase)
		assert.Equal(t, "develop", forge.LastFindBase)
	})

	t.Run("should resolve the default branch from the forge when not overridden", func(t *testing.T) {
		t.Parallel()

		// given
		workspaceDir := t.TempDir()
		artifact := builders.NewArtifactBuilder().BuildArtifact()
		producer := newCountProducer(artifact, nil)
		workspace := &doubles.StubWorkspaceRepository{HasChanges: false}
		forge := &doubles.StubForgeRepository{DefaultBranch: "trunk"}

		cmd := commands.NewSyncCommand(newTestSettings(), forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: workspaceDir,
			ArtifactKind: "count",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, forge.GetDefaultBranchCallCount)
		assert.Equal(t, "trunk", workspace.ConvergedBase)
	})

	t.Run("should fall back to the configured artifact kind", func(t *testing.T) {
		t.Parallel()

		// given
		workspaceDir := t.TempDir()
		settings := newTestSettings()
		settings.ArtifactKind = "count"
		artifact := builders.NewArtifactBuilder().BuildArtifact()
		producer := newCountProducer(artifact, nil)
		workspace := &doubles.StubWorkspaceRepository{HasChanges: false}
		forge := &doubles.StubForgeRepository{DefaultBranch: "main"}

		cmd := commands.NewSyncCommand(settings, forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{WorkspaceDir: workspaceDir})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, producer.ProduceCallCount)
	})

	t.Run("should fail for an unknown artifact kind", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewSyncCommand(
			newTestSettings(),
			&doubles.StubForgeRepository{},
			&doubles.StubWorkspaceRepository{},
			infraRepos.NewArtifactRegistry(),
			quietLogger(),
		)

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: t.TempDir(),
			ArtifactKind: "bogus",
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown artifact kind")
	})

	t.Run("should fail when the workspace does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		producer := newCountProducer(nil, nil)
		cmd := commands.NewSyncCommand(
			newTestSettings(),
			&doubles.StubForgeRepository{},
			&doubles.StubWorkspaceRepository{},
			newRegistry(producer),
			quietLogger(),
		)

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: filepath.Join(t.TempDir(), "missing"),
			ArtifactKind: "count",
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "workspace not found")
	})

	t.Run("should propagate a clone failure", func(t *testing.T) {
		t.Parallel()

		// given
		producer := newCountProducer(nil, nil)
		workspace := &doubles.StubWorkspaceRepository{EnsureCloneErr: errors.New("fetch failed")}
		forge := &doubles.StubForgeRepository{DefaultBranch: "main"}

		cmd := commands.NewSyncCommand(newTestSettings(), forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: t.TempDir(),
			ArtifactKind: "count",
		})

		// then
		require.Error(t, err)
		assert.Zero(t, producer.ProduceCallCount)
	})

	t.Run("should propagate a push failure", func(t *testing.T) {
		t.Parallel()

		// given
		workspaceDir := t.TempDir()
		artifact := builders.NewArtifactBuilder().BuildArtifact()
		producer := newCountProducer(artifact, nil)
		workspace := &doubles.StubWorkspaceRepository{HasChanges: true, PushErr: errors.New("remote rejected")}
		forge := &doubles.StubForgeRepository{DefaultBranch: "main"}

		cmd := commands.NewSyncCommand(newTestSettings(), forge, workspace, newRegistry(producer), quietLogger())

		// when
		err := cmd.Execute(context.Background(), commands.SyncOptions{
			WorkspaceDir: workspaceDir,
			ArtifactKind: "count",
		})

		// then
		require.Error(t, err)
		assert.Zero(t, forge.FindCallCount)
		assert.Zero(t, forge.CreateCallCount)
	})
}
