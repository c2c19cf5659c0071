package internal

import (
	"go.uber.org/dig"

	"github.com/nemo-docs/nemobot/internal/domain/commands"
	"github.com/nemo-docs/nemobot/internal/domain/entities"
	"github.com/nemo-docs/nemobot/internal/infrastructure/controllers"
	"github.com/nemo-docs/nemobot/internal/infrastructure/repositories"
)

// AppInternal aggregates the application's controllers.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application aggregate.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: domain entities -> infrastructure repos -> domain commands -> controllers)
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := container.Provide(NewLogger); err != nil {
		return err
	}
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}
