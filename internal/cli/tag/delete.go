package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
	"github.com/thenoetrevino/workboard/internal/models"
)

// DeleteCmd returns the tag delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a tag",
		Long: `Delete a tag by ID. A tag still attached to work items is only deleted
with --force, which detaches it from those items first.

Examples:
  # Delete an unused tag
  workboard tag delete --id=1

  # Delete a tag and detach it from its work items
  workboard tag delete --id=1 --force
`,
		RunE: handler.Command(&deleteHandler{}, parseIDFlag),
	}

	cmd.Flags().Int("id", 0, "Tag ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Bool("force", false, "Delete even when work items use the tag")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type deleteHandler struct{}

func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id := args.GetInt("id", 0)
	force := args.GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	resp, err := cliInstance.Store.Tags().Delete(ctx, id, force)
	if err != nil {
		return nil, fmt.Errorf("tag delete error: %w", err)
	}
	if resp != models.Deleted {
		reason := "the tag does not exist or is in use, use --force to detach it"
		if force {
			reason = "the tag does not exist"
		}
		return nil, cli.NewResponseError(resp, "tag", id, reason)
	}

	return &tagResult{Response: resp, ID: id}, nil
}
