package entities

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sethvargo/go-envconfig"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings holds every runtime input of a sync run. Values come from the
// environment (GitHub Actions exposes inputs both as INPUT_*-prefixed and
// plain variables; the prefixed form wins) plus an optional settings file.
type Settings struct {
	InputToken string `env:"INPUT_GITHUB_TOKEN"`
	Token      string `env:"GITHUB_TOKEN"`

	Repository    string `env:"GITHUB_REPOSITORY"`
	Actor         string `env:"GITHUB_ACTOR, default=automation"`
	DefaultBranch string `env:"DEFAULT_BRANCH"`
	Workspace     string `env:"GITHUB_WORKSPACE, default=/github/workspace"`
	ArtifactKind  string `env:"ARTIFACT_KIND, default=count"`

	InputLLMKey     string `env:"INPUT_LLM_API_KEY"`
	LLMKey          string `env:"LLM_API_KEY"`
	InputLLMBaseURL string `env:"INPUT_LLM_BASE_URL"`
	LLMBaseURL      string `env:"LLM_BASE_URL"`
	LLMModel        string `env:"LLM_MODEL, default=gpt-5-mini"`

	Debug bool `env:"DEBUG"`

	// ExcludedDirs extends the file counter's default exclusion set.
	// Settable through the settings file only.
	ExcludedDirs []string
}

// settingsFile is the optional on-disk override for a few settings.
type settingsFile struct {
	Artifact     string   `yaml:"artifact"`
	Model        string   `yaml:"model"`
	ExcludedDirs []string `yaml:"excluded_dirs"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads the process environment and the optional settings file.
func NewSettings(ctx context.Context) (*Settings, error) {
	return NewSettingsWith(ctx, envconfig.OsLookuper())
}

// NewSettingsWith is NewSettings with an explicit lookuper, for tests.
func NewSettingsWith(ctx context.Context, lookuper envconfig.Lookuper) (*Settings, error) {
	var settings Settings
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &settings,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if path, findErr := FindSettingsFile(); findErr == nil {
		if applyErr := settings.ApplyFile(path); applyErr != nil {
			logger.Warnf("Ignoring settings file %q: %v", path, applyErr)
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// FindSettingsFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindSettingsFile() (string, error) {
	patterns := []string{
		".nemobot.yaml",
		".nemobot.yml",
		"nemobot.yaml",
		"nemobot.yml",
	}

	for _, pat := range patterns {
		if _, statErr := os.Stat(pat); statErr == nil {
			return pat, nil
		}
	}

	return "", fmt.Errorf("settings file not found in default locations")
}

// ApplyFile overlays values from a YAML settings file, expanding ${ENV_VAR}
// references before parsing.
func (s *Settings) ApplyFile(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	var overrides settingsFile
	if unmarshalErr := yaml.Unmarshal([]byte(expanded), &overrides); unmarshalErr != nil {
		return fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	if overrides.Artifact != "" {
		s.ArtifactKind = overrides.Artifact
	}
	if overrides.Model != "" {
		s.LLMModel = overrides.Model
	}
	if len(overrides.ExcludedDirs) > 0 {
		s.ExcludedDirs = overrides.ExcludedDirs
	}

	return nil
}

// Validate checks for the required values. A missing credential or
// repository identifier makes the whole run impossible.
func (s *Settings) Validate() error {
	if s.Credential() == "" {
		return &ConfigurationError{Name: "INPUT_GITHUB_TOKEN or GITHUB_TOKEN"}
	}
	if s.Repository == "" {
		return &ConfigurationError{Name: "GITHUB_REPOSITORY"}
	}
	if !strings.Contains(s.Repository, "/") {
		return fmt.Errorf("GITHUB_REPOSITORY must be in owner/name form, got %q", s.Repository)
	}
	return nil
}

// Credential returns the forge token, preferring the Actions input form.
func (s *Settings) Credential() string {
	if s.InputToken != "" {
		return s.InputToken
	}
	return s.Token
}

// CompletionKey returns the completion API key, preferring the input form.
// Empty means summary generation is skipped.
func (s *Settings) CompletionKey() string {
	if s.InputLLMKey != "" {
		return s.InputLLMKey
	}
	return s.LLMKey
}

// CompletionBaseURL returns the completion endpoint override, if any.
func (s *Settings) CompletionBaseURL() string {
	if s.InputLLMBaseURL != "" {
		return s.InputLLMBaseURL
	}
	return s.LLMBaseURL
}
