//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
)

// ArtifactBuilder helps create test artifacts with a fluent interface.
type ArtifactBuilder struct {
	*testkit.BaseBuilder
	path    string
	content string
}

// NewArtifactBuilder creates a new artifact builder with sensible defaults.
func NewArtifactBuilder() *ArtifactBuilder {
	return &ArtifactBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "file_count",
		content:     "42",
	}
}

// WithPath sets the artifact's workspace-relative path.
func (b *ArtifactBuilder) WithPath(path string) *ArtifactBuilder {
	b.path = path
	return b
}

// WithContent sets the artifact content.
func (b *ArtifactBuilder) WithContent(content string) *ArtifactBuilder {
	b.content = content
	return b
}

// Build creates the artifact (satisfies testkit.Builder interface).
func (b *ArtifactBuilder) Build() interface{} {
	return b.BuildArtifact()
}

// BuildArtifact creates the artifact with a concrete return type.
func (b *ArtifactBuilder) BuildArtifact() *entities.Artifact {
	return &entities.Artifact{
		Path:    b.path,
		Content: []byte(b.content),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ArtifactBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "file_count"
	b.content = "42"
	return b
}

// Clone creates a deep copy of the ArtifactBuilder.
func (b *ArtifactBuilder) Clone() testkit.Builder {
	return &ArtifactBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		content:     b.content,
	}
}
