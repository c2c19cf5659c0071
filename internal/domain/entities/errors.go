package entities

import "fmt"

// ConfigurationError signals a missing required environment value.
// It is fatal: no side effects are attempted once it is raised.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required environment value: %s", e.Name)
}
