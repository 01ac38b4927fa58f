package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
)

// ListCmd returns the tag list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long: `List all tags ordered by name.

Examples:
  # Human-readable list
  workboard tag list

  # Quiet mode (one ID per line)
  workboard tag list --quiet
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

type listHandler struct{}

func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	tags, err := cliInstance.Store.Tags().Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("tag fetch error: %w", err)
	}

	return tagList(tags), nil
}
