package repositories

import (
	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
	domainRepos "github.com/nemo-docs/nemobot/internal/domain/repositories"
	countRepo "github.com/nemo-docs/nemobot/internal/infrastructure/repositories/count"
	gitRepo "github.com/nemo-docs/nemobot/internal/infrastructure/repositories/git"
	ghRepo "github.com/nemo-docs/nemobot/internal/infrastructure/repositories/github"
	summaryRepo "github.com/nemo-docs/nemobot/internal/infrastructure/repositories/summary"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Workspace repository (git CLI)
	if err := container.Provide(func(log *logger.Logger) domainRepos.WorkspaceRepository {
		return gitRepo.NewGitWorkspaceRepository(log)
	}); err != nil {
		return err
	}

	// Forge repository (GitHub REST)
	if err := container.Provide(func(settings *entities.Settings, log *logger.Logger) (domainRepos.ForgeRepository, error) {
		return ghRepo.NewGitHubForgeRepository(settings.Credential(), settings.Repository, log)
	}); err != nil {
		return err
	}

	// Artifact registry with all producer implementations
	if err := container.Provide(func(settings *entities.Settings, log *logger.Logger) *ArtifactRegistry {
		reg := NewArtifactRegistry()
		reg.Register(countRepo.NewCountArtifactRepository(settings.ExcludedDirs, log))
		reg.Register(summaryRepo.NewSummaryArtifactRepository(summaryRepo.Options{
			APIKey:  settings.CompletionKey(),
			BaseURL: settings.CompletionBaseURL(),
			Model:   settings.LLMModel,
		}, log))
		return reg
	}); err != nil {
		return err
	}

	return nil
}
