package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
	domainRepos "github.com/nemo-docs/nemobot/internal/domain/repositories"
	infraRepos "github.com/nemo-docs/nemobot/internal/infrastructure/repositories"
)

// Sync is the interface for the sync command.
type Sync interface {
	Execute(ctx context.Context, opts SyncOptions) error
}

// SyncOptions holds runtime options for a single run.
type SyncOptions struct {
	WorkspaceDir string
	ArtifactKind string // If set, overrides the configured artifact kind
	Verbose      bool
}

// SyncCommand converges an arbitrary checkout and arbitrary pre-existing
// remote branch/PR state to "work branch exists remotely with the latest
// artifact commit, and exactly one open PR targets it":
// clone -> configure -> converge branch -> produce -> commit -> push ->
// find-or-create PR. Every step is idempotent, so re-triggering a run is
// always safe.
type SyncCommand struct {
	settings  *entities.Settings
	forge     domainRepos.ForgeRepository
	workspace domainRepos.WorkspaceRepository
	artifacts *infraRepos.ArtifactRegistry
	log       *logger.Entry
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	settings *entities.Settings,
	forge domainRepos.ForgeRepository,
	workspace domainRepos.WorkspaceRepository,
	artifacts *infraRepos.ArtifactRegistry,
	log *logger.Logger,
) *SyncCommand {
	return &SyncCommand{
		settings:  settings,
		forge:     forge,
		workspace: workspace,
		artifacts: artifacts,
		log:       log.WithField("component", "sync"),
	}
}

// Execute runs the full convergence protocol. It returns nil on the
// designed no-op exits (nothing produced, nothing changed, PR reused);
// any other failure aborts the run.
func (it *SyncCommand) Execute(ctx context.Context, opts SyncOptions) error {
	if opts.Verbose {
		it.log.Logger.SetLevel(logger.DebugLevel)
	}

	kind := opts.ArtifactKind
	if kind == "" {
		kind = it.settings.ArtifactKind
	}
	producer := it.artifacts.Get(kind)
	if producer == nil {
		return fmt.Errorf("unknown artifact kind %q (registered: %v)", kind, it.artifacts.Names())
	}

	workspaceDir, err := filepath.Abs(opts.WorkspaceDir)
	if err != nil {
		return fmt.Errorf("invalid workspace path: %w", err)
	}
	if _, statErr := os.Stat(workspaceDir); statErr != nil {
		return fmt.Errorf("workspace not found: %w", statErr)
	}

	baseBranch, err := it.resolveBaseBranch(ctx)
	if err != nil {
		return err
	}
	workBranch := producer.BranchName()
	it.log.Infof("Repository %s: base branch %q, work branch %q", it.settings.Repository, baseBranch, workBranch)

	if err = it.prepareWorkspace(ctx, workspaceDir, baseBranch, workBranch); err != nil {
		return err
	}

	artifact, err := producer.Produce(ctx, workspaceDir)
	if err != nil {
		// A production failure is not a workflow failure: the next run
		// re-converges and tries again.
		it.log.Warnf("Artifact production failed: %v; skipping this run", err)
		return nil
	}
	if artifact == nil {
		it.log.Info("Nothing produced; skipping this run")
		return nil
	}

	target := filepath.Join(workspaceDir, artifact.Path)
	if err = os.WriteFile(target, artifact.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact to %s: %w", target, err)
	}
	it.log.Infof("Wrote artifact to %s", target)

	changed, err := it.workspace.HasPendingChanges(ctx, workspaceDir)
	if err != nil {
		return err
	}
	if !changed {
		it.log.Info("No changes detected after writing the artifact; exiting")
		return nil
	}

	if err = it.workspace.CommitPaths(ctx, workspaceDir, []string{artifact.Path}, producer.CommitMessage()); err != nil {
		return err
	}
	if err = it.workspace.PushBranch(ctx, workspaceDir, workBranch); err != nil {
		return err
	}

	return it.findOrCreatePullRequest(ctx, producer, workBranch, baseBranch)
}

// resolveBaseBranch prefers the explicit override to a live lookup.
func (it *SyncCommand) resolveBaseBranch(ctx context.Context) (string, error) {
	if it.settings.DefaultBranch != "" {
		return it.settings.DefaultBranch, nil
	}
	branch, err := it.forge.GetDefaultBranch(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve default branch: %w", err)
	}
	return branch, nil
}

// prepareWorkspace guarantees a synced clone with commit identity and an
// authenticated remote, then converges the work branch onto the freshest
// base tip.
func (it *SyncCommand) prepareWorkspace(ctx context.Context, dir, baseBranch, workBranch string) error {
	credential := it.settings.Credential()

	if err := it.workspace.EnsureClone(ctx, dir, credential, it.settings.Repository, baseBranch); err != nil {
		return err
	}
	if err := it.workspace.ConfigureIdentity(ctx, dir, it.settings.Actor); err != nil {
		return err
	}
	if err := it.workspace.SetAuthenticatedRemote(ctx, dir, credential, it.settings.Repository); err != nil {
		return err
	}
	return it.workspace.ConvergeWorkBranch(ctx, dir, baseBranch, workBranch)
}

// findOrCreatePullRequest reuses the open PR for the branch pair when one
// exists; only one open PR ever targets the pair.
func (it *SyncCommand) findOrCreatePullRequest(
	ctx context.Context,
	producer domainRepos.ArtifactRepository,
	workBranch, baseBranch string,
) error {
	existing, err := it.forge.FindOpenPullRequest(ctx, workBranch, baseBranch)
	if err != nil {
		return err
	}
	if existing != nil {
		it.log.Infof("Reusing existing PR: %s", existing.URL)
		return nil
	}

	pr, err := it.forge.CreatePullRequest(ctx, entities.PullRequestInput{
		SourceBranch: "refs/heads/" + workBranch,
		TargetBranch: "refs/heads/" + baseBranch,
		Title:        producer.PullRequestTitle(),
		Description:  producer.PullRequestBody(),
	})
	if err != nil {
		return fmt.Errorf("failed to create PR: %w", err)
	}

	it.log.Infof("Created PR #%d: %s", pr.ID, pr.URL)
	return nil
}
