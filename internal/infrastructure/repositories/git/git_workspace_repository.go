package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/nemo-docs/nemobot/internal/domain/repositories"
)

const remoteName = "origin"

// credentialPattern matches the userinfo section of an embedded-credential URL.
var credentialPattern = regexp.MustCompile(`://[^@/\s]+@`)

// GitWorkspaceRepository implements repositories.WorkspaceRepository by
// shelling out to the git binary.
type GitWorkspaceRepository struct {
	log *logger.Entry
}

var _ domainRepos.WorkspaceRepository = (*GitWorkspaceRepository)(nil)

// NewGitWorkspaceRepository creates a new git-backed workspace repository.
func NewGitWorkspaceRepository(log *logger.Logger) *GitWorkspaceRepository {
	return &GitWorkspaceRepository{
		log: log.WithField("component", "git"),
	}
}

// run invokes git with the given argument vector and returns its stdout.
// A non-zero exit becomes a *CommandError carrying the captured output.
func (it *GitWorkspaceRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	it.log.Debugf("Running: git %s (in %s)", strings.Join(redactArgs(args), " "), dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("failed to invoke git: %w", err)
		}
		return "", &CommandError{
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}

	return stdout.String(), nil
}

// IsRepository probes dir with a no-op ref inspection. The "dubious
// ownership" failure (working tree owned by another user, common in
// container-mounted workspaces) is remediated once by trusting the path,
// then the probe is retried exactly once.
func (it *GitWorkspaceRepository) IsRepository(ctx context.Context, dir string) (bool, error) {
	_, err := it.run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err == nil {
		return true, nil
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return false, err
	}

	if isDubiousOwnership(cmdErr) {
		it.log.Warnf("Working tree %s owned by another user; registering it as trusted", dir)
		if _, trustErr := it.run(ctx, dir, "config", "--global", "--add", "safe.directory", dir); trustErr != nil {
			return false, fmt.Errorf("failed to trust %s: %w", dir, trustErr)
		}
		if _, retryErr := it.run(ctx, dir, "rev-parse", "--is-inside-work-tree"); retryErr == nil {
			return true, nil
		}
	}

	return false, nil
}

// EnsureClone initializes dir as a shallow clone of repo when it is not
// already a repository.
func (it *GitWorkspaceRepository) EnsureClone(ctx context.Context, dir, credential, repo, defaultBranch string) error {
	exists, err := it.IsRepository(ctx, dir)
	if err != nil {
		return err
	}
	if exists {
		it.log.Debugf("%s is already a repository", dir)
		return nil
	}

	it.log.Infof("Initializing repository in %s", dir)

	steps := [][]string{
		{"init"},
		{"remote", "add", remoteName, authenticatedURL(credential, repo)},
		{"fetch", "--depth=1", remoteName, defaultBranch},
		{"checkout", "-B", defaultBranch, remoteName + "/" + defaultBranch},
	}
	for _, args := range steps {
		if _, runErr := it.run(ctx, dir, args...); runErr != nil {
			return runErr
		}
	}

	return nil
}

// ConfigureIdentity sets the commit author, scoped to this working tree.
func (it *GitWorkspaceRepository) ConfigureIdentity(ctx context.Context, dir, actor string) error {
	if _, err := it.run(ctx, dir, "config", "--local", "user.name", actor); err != nil {
		return err
	}
	email := fmt.Sprintf("%s@users.noreply.github.com", actor)
	_, err := it.run(ctx, dir, "config", "--local", "user.email", email)
	return err
}

// SetAuthenticatedRemote rewrites origin's URL to embed the credential.
func (it *GitWorkspaceRepository) SetAuthenticatedRemote(ctx context.Context, dir, credential, repo string) error {
	_, err := it.run(ctx, dir, "remote", "set-url", remoteName, authenticatedURL(credential, repo))
	return err
}

// ConvergeWorkBranch syncs baseBranch to the remote tip and recreates
// workBranch exactly there, discarding stale local commits from any
// previous failed run.
func (it *GitWorkspaceRepository) ConvergeWorkBranch(ctx context.Context, dir, baseBranch, workBranch string) error {
	remoteBase := remoteName + "/" + baseBranch

	steps := [][]string{
		{"fetch", remoteName, baseBranch},
		{"checkout", baseBranch},
		{"reset", "--hard", remoteBase},
		{"pull", remoteName, baseBranch},
		{"checkout", "-B", workBranch, remoteBase},
	}
	for _, args := range steps {
		if _, err := it.run(ctx, dir, args...); err != nil {
			return err
		}
	}

	return nil
}

// HasPendingChanges reports whether the porcelain status is non-empty.
func (it *GitWorkspaceRepository) HasPendingChanges(ctx context.Context, dir string) (bool, error) {
	out, err := it.run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// CommitPaths stages exactly the given paths and creates one commit.
// Git itself fails the commit when nothing ends up staged.
func (it *GitWorkspaceRepository) CommitPaths(ctx context.Context, dir string, paths []string, message string) error {
	if _, err := it.run(ctx, dir, append([]string{"add"}, paths...)...); err != nil {
		return err
	}
	_, err := it.run(ctx, dir, "commit", "-m", message)
	return err
}

// PushBranch pushes branch, protecting an existing remote ref with a lease.
// A lease precondition against a ref that does not exist yet would always
// fail, so a branch missing from the remote is pushed with plain force.
func (it *GitWorkspaceRepository) PushBranch(ctx context.Context, dir, branch string) error {
	if _, err := it.run(ctx, dir, "fetch", remoteName, branch); err != nil {
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			return err
		}
		it.log.Debugf("Branch %q not on remote yet; pushing with force", branch)
		_, pushErr := it.run(ctx, dir, "push", "-u", remoteName, branch, "--force")
		return pushErr
	}

	_, err := it.run(ctx, dir, "push", "-u", remoteName, branch, "--force-with-lease")
	return err
}

// authenticatedURL builds the token-embedding HTTPS remote URL.
func authenticatedURL(credential, repo string) string {
	return fmt.Sprintf("https://x-access-token:%s@github.com/%s", credential, repo)
}

// redactArgs masks embedded credentials before anything is logged.
func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	for i, arg := range args {
		redacted[i] = credentialPattern.ReplaceAllString(arg, "://***@")
	}
	return redacted
}

func isDubiousOwnership(err *CommandError) bool {
	return strings.Contains(err.Stderr, "dubious ownership")
}
