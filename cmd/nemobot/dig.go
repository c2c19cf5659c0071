package main

import (
	"go.uber.org/dig"

	"github.com/nemo-docs/nemobot/internal"
	"github.com/nemo-docs/nemobot/internal/infrastructure/controllers"
)

func injectApp() (*controllers.SyncController, *internal.AppInternal, error) {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		return nil, nil, err
	}

	// Invoke to get the sync controller and the app aggregate
	var (
		syncController *controllers.SyncController
		appInternal    *internal.AppInternal
	)
	if err := container.Invoke(func(sc *controllers.SyncController, ai *internal.AppInternal) {
		syncController = sc
		appInternal = ai
	}); err != nil {
		return nil, nil, dig.RootCause(err)
	}

	return syncController, appInternal, nil
}
