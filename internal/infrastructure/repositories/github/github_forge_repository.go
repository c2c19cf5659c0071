package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
	domainRepos "github.com/nemo-docs/nemobot/internal/domain/repositories"
)

const (
	stateOpen  = "open"
	apiTimeout = 15 * time.Second
)

// GitHubForgeRepository implements repositories.ForgeRepository for GitHub.
type GitHubForgeRepository struct {
	client *gh.Client
	owner  string
	name   string
	log    *logger.Entry
}

var _ domainRepos.ForgeRepository = (*GitHubForgeRepository)(nil)

// NewGitHubForgeRepository creates a forge repository for "owner/name",
// authenticating with the scheme resolved from the token's prefix.
func NewGitHubForgeRepository(token, repo string, log *logger.Logger) (*GitHubForgeRepository, error) {
	httpClient := &http.Client{
		Timeout:   apiTimeout,
		Transport: newAuthTransport(DetectAuthScheme(token), token),
	}
	return NewGitHubForgeRepositoryWithClient(gh.NewClient(httpClient), repo, log)
}

// NewGitHubForgeRepositoryWithClient wires an existing go-github client,
// used by tests to point at a fake server.
func NewGitHubForgeRepositoryWithClient(client *gh.Client, repo string, log *logger.Logger) (*GitHubForgeRepository, error) {
	owner, name, err := splitRepository(repo)
	if err != nil {
		return nil, err
	}
	return &GitHubForgeRepository{
		client: client,
		owner:  owner,
		name:   name,
		log:    log.WithField("component", "forge"),
	}, nil
}

// GetDefaultBranch reads the repository metadata and extracts its
// default branch.
func (it *GitHubForgeRepository) GetDefaultBranch(ctx context.Context) (string, error) {
	repo, _, err := it.client.Repositories.Get(ctx, it.owner, it.name)
	if err != nil {
		return "", wrapAPIError(err)
	}
	return repo.GetDefaultBranch(), nil
}

// FindOpenPullRequest lists open pull requests filtered by exact head and
// base; the first match wins, nil means none exists.
func (it *GitHubForgeRepository) FindOpenPullRequest(ctx context.Context, headBranch, baseBranch string) (*entities.PullRequest, error) {
	prs, _, err := it.client.PullRequests.List(ctx, it.owner, it.name, &gh.PullRequestListOptions{
		State: stateOpen,
		Head:  it.owner + ":" + headBranch,
		Base:  baseBranch,
	})
	if err != nil {
		return nil, wrapAPIError(err)
	}
	if len(prs) == 0 {
		return nil, nil
	}

	it.log.Debugf("Found %d open pull request(s) for %s -> %s", len(prs), headBranch, baseBranch)
	return mapPullRequest(prs[0]), nil
}

// CreatePullRequest opens a new pull request.
func (it *GitHubForgeRepository) CreatePullRequest(ctx context.Context, input entities.PullRequestInput) (*entities.PullRequest, error) {
	sourceBranch := strings.TrimPrefix(input.SourceBranch, "refs/heads/")
	targetBranch := strings.TrimPrefix(input.TargetBranch, "refs/heads/")

	maintainerCanModify := true
	pr, _, err := it.client.PullRequests.Create(ctx, it.owner, it.name, &gh.NewPullRequest{
		Title:               &input.Title,
		Head:                &sourceBranch,
		Base:                &targetBranch,
		Body:                &input.Description,
		MaintainerCanModify: &maintainerCanModify,
	})
	if err != nil {
		return nil, wrapAPIError(err)
	}

	return mapPullRequest(pr), nil
}

func mapPullRequest(pr *gh.PullRequest) *entities.PullRequest {
	return &entities.PullRequest{
		ID:     pr.GetNumber(),
		Title:  pr.GetTitle(),
		URL:    pr.GetHTMLURL(),
		Status: pr.GetState(),
	}
}

func splitRepository(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("repository must be in owner/name form, got %q", repo)
	}
	return owner, name, nil
}
