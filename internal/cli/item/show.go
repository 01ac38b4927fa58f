package item

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
	"github.com/thenoetrevino/workboard/internal/models"
)

// ShowCmd returns the item show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show work item details",
		Long:  "Display all details of a work item, with the description rendered as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(&showHandler{}, parseShowFlags),
	}

	cmd.Flags().Int("id", 0, "Work item ID (can also be provided as positional argument)")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type showHandler struct{}

func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := showID(args.GetCmd(), args.Args)
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	item, err := cliInstance.Store.WorkItems().Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("work item fetch error: %w", err)
	}
	if item == nil {
		return nil, cli.NewResponseError(models.NotFound, "work item", id, "")
	}

	return (*itemDetail)(item), nil
}

// showID takes the id from the positional argument, else from --id
func showID(cmd *cobra.Command, args []string) (int, error) {
	if len(args) == 0 {
		return handler.NewFlagParser(cmd).ParseID("id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: work item ID must be a positive integer, got %q", cli.ErrInvalidInput, args[0])
	}
	return id, nil
}

func parseShowFlags(cmd *cobra.Command) error {
	_, err := showID(cmd, cmd.Flags().Args())
	return err
}
