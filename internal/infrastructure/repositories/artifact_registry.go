package repositories

import (
	domainRepos "github.com/nemo-docs/nemobot/internal/domain/repositories"
)

// ArtifactRegistry manages all registered artifact producer implementations.
type ArtifactRegistry struct {
	producers map[string]domainRepos.ArtifactRepository
}

// NewArtifactRegistry creates an empty artifact registry.
func NewArtifactRegistry() *ArtifactRegistry {
	return &ArtifactRegistry{
		producers: make(map[string]domainRepos.ArtifactRepository),
	}
}

// Register adds a producer under its name.
func (r *ArtifactRegistry) Register(p domainRepos.ArtifactRepository) {
	r.producers[p.Name()] = p
}

// Get returns the producer with the given name, or nil if not registered.
func (r *ArtifactRegistry) Get(name string) domainRepos.ArtifactRepository {
	return r.producers[name]
}

// All returns every registered producer.
func (r *ArtifactRegistry) All() []domainRepos.ArtifactRepository {
	result := make([]domainRepos.ArtifactRepository, 0, len(r.producers))
	for _, p := range r.producers {
		result = append(result, p)
	}
	return result
}

// Names returns the list of registered producer names.
func (r *ArtifactRegistry) Names() []string {
	names := make([]string, 0, len(r.producers))
	for name := range r.producers {
		names = append(names, name)
	}
	return names
}
