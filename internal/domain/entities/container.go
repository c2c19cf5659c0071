package entities

import (
	"context"

	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() (*Settings, error) {
		return NewSettings(context.Background())
	})
}
