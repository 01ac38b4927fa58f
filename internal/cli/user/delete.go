package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
	"github.com/thenoetrevino/workboard/internal/models"
)

// DeleteCmd returns the user delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user",
		Long: `Delete a user by ID. A user with assigned work items is only deleted
with --force, which leaves those items unassigned.

Examples:
  workboard user delete --id=2
  workboard user delete --id=2 --force
`,
		RunE: handler.Command(&deleteHandler{}, parseIDFlag),
	}

	cmd.Flags().Int("id", 0, "User ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Bool("force", false, "Delete even when work items are assigned to the user")
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

	resp, err := cliInstance.Store.Users().Delete(ctx, id, force)
	if err != nil {
		return nil, fmt.Errorf("user delete error: %w", err)
	}
	if resp != models.Deleted {
		reason := "the user does not exist or has assigned work items, use --force to unassign them"
		if force {
			reason = "the user does not exist"
		}
		return nil, cli.NewResponseError(resp, "user", id, reason)
	}

	return &userResult{Response: resp, ID: id}, nil
}
