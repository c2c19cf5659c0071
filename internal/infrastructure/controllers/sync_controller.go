package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nemo-docs/nemobot/internal/domain/commands"
	"github.com/nemo-docs/nemobot/internal/domain/entities"
)

// SyncController handles the sync action: produce the artifact, commit,
// push, and open or reuse the pull request.
type SyncController struct {
	command  commands.Sync
	settings *entities.Settings
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync, settings *entities.Settings) *SyncController {
	return &SyncController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync",
		Short: "Generate the artifact, commit it, and open or reuse a pull request",
		Long: `Converge the work branch onto the default branch tip, generate the
configured artifact (file count or README summary), commit and push it,
and open a pull request, or reuse the one already open for the branch pair.
Re-running against unchanged content is a no-op.`,
	}
}

// Execute runs one sync.
func (it *SyncController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	artifact, _ := cmd.Flags().GetString("artifact")
	verbose, _ := cmd.Flags().GetBool("verbose")

	workspaceDir := it.settings.Workspace
	if len(args) > 0 {
		workspaceDir = args[0]
	}

	return it.command.Execute(ctx, commands.SyncOptions{
		WorkspaceDir: workspaceDir,
		ArtifactKind: artifact,
		Verbose:      verbose,
	})
}
