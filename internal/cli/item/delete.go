package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
)

// DeleteCmd returns the item delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a work item",
		Long: `Delete a work item by ID. What happens depends on its state:

  New                         the item is deleted
  Active                      the item is marked Removed
  Resolved, Closed, Removed   nothing changes and the command fails

Examples:
  workboard item delete --id=3
`,
		RunE: handler.Command(&deleteHandler{}, parseDeleteFlags),
	}

	cmd.Flags().Int("id", 0, "Work item ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type deleteHandler struct{}

func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id := args.GetInt("id", 0)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	resp, err := cliInstance.Store.WorkItems().Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("work item delete error: %w", err)
	}
	if !resp.Success() {
		return nil, cli.NewResponseError(resp, "work item", id, "the work item does not exist or its state does not allow deletion")
	}

	return &itemResult{Response: resp, ID: id}, nil
}

func parseDeleteFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseID("id")
	return err
}
