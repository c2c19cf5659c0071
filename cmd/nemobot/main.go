package main

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nemo-docs/nemobot/internal"
	"github.com/nemo-docs/nemobot/internal/infrastructure/controllers"
)

func buildRootCommand(syncController *controllers.SyncController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "nemobot [path]",
		Short: "CI bot that commits a generated artifact and opens a pull request",
		Long: `A CI-time automation bot that inspects a repository checkout, derives a
small artifact (a file count or an LLM-generated README summary), commits
it on a dedicated work branch, pushes it, and opens or reuses a pull
request against the default branch.

Every run converges the work branch onto the freshest default-branch tip
first, so re-triggering is always safe: unchanged content produces no
commit, no push, and no new pull request.

Usage modes:
  nemobot                    Run against $GITHUB_WORKSPACE (Actions mode)
  nemobot /path/to/checkout  Run against a specific local checkout`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return syncController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().String("artifact", "",
		"Artifact producer to run: count or summary (overrides ARTIFACT_KIND)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	syncController, appContext, err := injectApp()
	if err != nil {
		logger.Fatalf("Error initializing 'nemobot': %s", err)
	}

	cobraRoot := buildRootCommand(syncController)
	addSubcommands(cobraRoot, appContext)

	if execErr := cobraRoot.Execute(); execErr != nil {
		logger.Fatalf("Error executing 'nemobot': %s", execErr)
	}
}
