package count

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
	domainRepos "github.com/nemo-docs/nemobot/internal/domain/repositories"
)

const (
	producerName  = "count"
	artifactPath  = "file_count"
	branchName    = "nemo-docs/file-count-update"
	commitMessage = "chore: Update file_count"
	prTitle       = "chore: Update file_count"
	prBody        = `Automated file count for this repository.

This PR adds or updates ` + "`file_count`" + ` with the number of non-hidden files in the checkout.`
)

// defaultExcludedDirs are vendor and virtualenv directories that never
// count toward the total. Hidden directories are pruned regardless.
var defaultExcludedDirs = []string{"node_modules", "venv", ".venv", "__pycache__"}

// CountArtifactRepository produces a decimal file count of the workspace.
type CountArtifactRepository struct {
	excluded map[string]struct{}
	log      *logger.Entry
}

var _ domainRepos.ArtifactRepository = (*CountArtifactRepository)(nil)

// NewCountArtifactRepository creates a counter whose exclusion set is the
// default extended with extraExcludedDirs.
func NewCountArtifactRepository(extraExcludedDirs []string, log *logger.Logger) *CountArtifactRepository {
	excluded := make(map[string]struct{}, len(defaultExcludedDirs)+len(extraExcludedDirs))
	for _, dir := range defaultExcludedDirs {
		excluded[dir] = struct{}{}
	}
	for _, dir := range extraExcludedDirs {
		excluded[dir] = struct{}{}
	}
	return &CountArtifactRepository{
		excluded: excluded,
		log:      log.WithField("component", producerName),
	}
}

func (it *CountArtifactRepository) Name() string             { return producerName }
func (it *CountArtifactRepository) BranchName() string       { return branchName }
func (it *CountArtifactRepository) CommitMessage() string    { return commitMessage }
func (it *CountArtifactRepository) PullRequestTitle() string { return prTitle }
func (it *CountArtifactRepository) PullRequestBody() string  { return prBody }

// Produce counts the non-hidden files under workspaceDir, pruning hidden
// and excluded directories.
func (it *CountArtifactRepository) Produce(_ context.Context, workspaceDir string) (*entities.Artifact, error) {
	total := 0

	err := filepath.WalkDir(workspaceDir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		name := entry.Name()
		if entry.IsDir() {
			if path == workspaceDir {
				return nil
			}
			if isHidden(name) || it.isExcluded(name) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isHidden(name) {
			total++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", workspaceDir, err)
	}

	it.log.Infof("Counted %d files under %s", total, workspaceDir)

	return &entities.Artifact{
		Path:    artifactPath,
		Content: []byte(strconv.Itoa(total)),
	}, nil
}

func (it *CountArtifactRepository) isExcluded(name string) bool {
	_, ok := it.excluded[name]
	return ok
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
