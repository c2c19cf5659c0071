package summary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	logger "github.com/sirupsen/logrus"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
	domainRepos "github.com/nemo-docs/nemobot/internal/domain/repositories"
)

const (
	producerName  = "summary"
	artifactPath  = "summary.txt"
	branchName    = "nemo_docs/summary-update"
	commitMessage = "nemo_docs: update repository summary"
	prTitle       = "nemo_docs: Update repository summary"
	prBody        = `Automated summary of README.md using OpenAI.

This PR adds or updates ` + "`summary.txt`" + ` with a concise overview of the project.`

	defaultModel = "gpt-5-mini"

	promptTemplate = `Please provide a concise summary of the following README file.
Focus on the project's purpose, key features, installation, and usage.
Keep it under 500 words.

README:

%s`

	outputTemplate = `# Automated Repository Summary

%s

*This summary was automatically generated using OpenAI.*
`
)

// readmeCandidates are tried in order inside the workspace checkout.
var readmeCandidates = []string{"README.md", "README", "readme.md"}

// Options configures the completion call.
type Options struct {
	APIKey  string // empty means summary generation is skipped
	BaseURL string // optional endpoint override
	Model   string // defaults to defaultModel
}

// SummaryArtifactRepository produces an LLM-generated README summary.
type SummaryArtifactRepository struct {
	opts   Options
	client openai.Client
	log    *logger.Entry
}

var _ domainRepos.ArtifactRepository = (*SummaryArtifactRepository)(nil)

// NewSummaryArtifactRepository creates a summary producer. The completion
// client is built once; the base URL override makes the endpoint
// swappable (and testable against a fake server).
func NewSummaryArtifactRepository(opts Options, log *logger.Logger) *SummaryArtifactRepository {
	clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	return &SummaryArtifactRepository{
		opts:   opts,
		client: openai.NewClient(clientOpts...),
		log:    log.WithField("component", producerName),
	}
}

func (it *SummaryArtifactRepository) Name() string             { return producerName }
func (it *SummaryArtifactRepository) BranchName() string       { return branchName }
func (it *SummaryArtifactRepository) CommitMessage() string    { return commitMessage }
func (it *SummaryArtifactRepository) PullRequestTitle() string { return prTitle }
func (it *SummaryArtifactRepository) PullRequestBody() string  { return prBody }

// Produce reads the checkout's README and asks the completion API for a
// summary. A missing API key yields (nil, nil): nothing to commit.
func (it *SummaryArtifactRepository) Produce(ctx context.Context, workspaceDir string) (*entities.Artifact, error) {
	if it.opts.APIKey == "" {
		it.log.Warn("No completion API key provided; skipping summary generation")
		return nil, nil
	}

	readme, err := readWorkspaceReadme(workspaceDir)
	if err != nil {
		return nil, err
	}
	it.log.Debugf("Read README with %d characters", len(readme))

	model := it.opts.Model
	if model == "" {
		model = defaultModel
	}

	completion, err := it.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(promptTemplate, readme)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("completion response contained no choices")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)

	return &entities.Artifact{
		Path:    artifactPath,
		Content: []byte(fmt.Sprintf(outputTemplate, text)),
	}, nil
}

func readWorkspaceReadme(workspaceDir string) (string, error) {
	for _, candidate := range readmeCandidates {
		data, err := os.ReadFile(filepath.Join(workspaceDir, candidate))
		if err == nil {
			return string(data), nil
		}
	}
	return "", fmt.Errorf("no README found in %s", workspaceDir)
}
