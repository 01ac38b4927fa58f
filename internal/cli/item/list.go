package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
	"github.com/thenoetrevino/workboard/internal/database"
	"github.com/thenoetrevino/workboard/internal/models"
)

var filterFlags = []string{"state", "tag", "user", "removed"}

// ListCmd returns the item list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work items",
		Long: `List work items ordered by title. At most one filter may be given.

Examples:
  workboard item list
  workboard item list --state=Active
  workboard item list --tag=frontend
  workboard item list --user=2
  workboard item list --removed --quiet
`,
		RunE: handler.Command(&listHandler{}, parseListFlags),
	}

	cmd.Flags().String("state", "", "Only items in this state (New, Active, Resolved, Closed, Removed)")
	cmd.Flags().String("tag", "", "Only items carrying this tag")
	cmd.Flags().Int("user", 0, "Only items assigned to this user ID")
	cmd.Flags().Bool("removed", false, "Only removed items")
	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

type listHandler struct{}

func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	state, err := parser.ParseState("state")
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

	items, err := readItems(ctx, cliInstance.Store.WorkItems(), args, state)
	if err != nil {
		return nil, fmt.Errorf("work item fetch error: %w", err)
	}

	return itemList(items), nil
}

// readItems picks the repository query matching the filter that was set
func readItems(ctx context.Context, repo database.WorkItemReader, args *handler.Arguments, state models.State) ([]models.WorkItemDTO, error) {
	switch {
	case state != "":
		return repo.ReadByState(ctx, state)
	case args.Has("tag"):
		return repo.ReadByTag(ctx, args.GetString("tag", ""))
	case args.Has("user"):
		return repo.ReadByUser(ctx, args.GetInt("user", 0))
	case args.GetBool("removed"):
		return repo.ReadRemoved(ctx)
	default:
		return repo.Read(ctx)
	}
}

func parseListFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if err := parser.ExclusiveFlags(filterFlags...); err != nil {
		return err
	}
	if _, err := parser.ParseIDOptional("user"); err != nil {
		return err
	}
	_, err := parser.ParseState("state")
	return err
}
