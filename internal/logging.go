package internal

import (
	logger "github.com/sirupsen/logrus"

	"github.com/nemo-docs/nemobot/internal/domain/entities"
)

// NewLogger builds the one logger instance every component receives.
// The level comes from the injected settings, not from ambient state.
func NewLogger(settings *entities.Settings) *logger.Logger {
	log := logger.New()
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	log.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if settings.Debug {
		log.SetLevel(logger.DebugLevel)
	}
	return log
}
