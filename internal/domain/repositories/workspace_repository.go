package repositories

import (
	"context"
)

// WorkspaceRepository wraps the version-control operations a run needs to
// take an arbitrary checkout to a known-good state and publish one commit.
type WorkspaceRepository interface {
	// IsRepository reports whether dir is inside a working tree.
	IsRepository(ctx context.Context, dir string) (bool, error)

	// EnsureClone makes dir a shallow clone of repo checked out at
	// defaultBranch. No-op when dir is already a repository.
	// Side effect: the authenticated remote URL (which embeds the
	// credential) is written into the local git configuration.
	EnsureClone(ctx context.Context, dir, credential, repo, defaultBranch string) error

	// ConfigureIdentity sets the commit author for this working tree only.
	ConfigureIdentity(ctx context.Context, dir, actor string) error

	// SetAuthenticatedRemote idempotently rewrites origin's URL to embed
	// the credential so pushes need no further prompting.
	SetAuthenticatedRemote(ctx context.Context, dir, credential, repo string) error

	// ConvergeWorkBranch resets baseBranch to the fetched remote tip and
	// recreates workBranch exactly at that tip, discarding any local
	// drift. Running it twice with no intervening remote change is a
	// no-op after the first run.
	ConvergeWorkBranch(ctx context.Context, dir, baseBranch, workBranch string) error

	// HasPendingChanges reports whether the working tree has any staged
	// or unstaged modification.
	HasPendingChanges(ctx context.Context, dir string) (bool, error)

	// CommitPaths stages exactly the given paths and creates one commit.
	CommitPaths(ctx context.Context, dir string, paths []string, message string) error

	// PushBranch pushes with a lease when the branch already exists on
	// the remote, and with an unconditional force when it does not.
	PushBranch(ctx context.Context, dir, branch string) error
}
