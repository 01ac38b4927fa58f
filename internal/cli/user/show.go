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

// ShowCmd returns the user show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a user",
		RunE:  handler.Command(&showHandler{}, parseIDFlag),
	}

	cmd.Flags().Int("id", 0, "User ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type showHandler struct{}

func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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

	user, err := cliInstance.Store.Users().Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user fetch error: %w", err)
	}
	if user == nil {
		return nil, cli.NewResponseError(models.NotFound, "user", id, "")
	}

	return (*userDetail)(user), nil
}

func parseIDFlag(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseID("id")
	return err
}
