package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
	"github.com/thenoetrevino/workboard/internal/models"
)

// UpdateCmd returns the tag update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a tag",
		Long: `Rename a tag. Fails with a conflict when another tag has the name.

Examples:
  workboard tag update --id=1 --name="defect"
`,
		RunE: handler.Command(&updateHandler{}, parseUpdateFlags),
	}

	cmd.Flags().Int("id", 0, "Tag ID (required)")
	cmd.Flags().String("name", "", "New tag name (required)")
	for _, name := range []string{"id", "name"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type updateInput struct {
	ID   int    `flag:"id" validate:"gt=0"`
	Name string `flag:"name" validate:"required,max=100"`
}

type updateHandler struct{}

func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	input := updateInput{
		ID:   args.GetInt("id", 0),
		Name: strings.TrimSpace(args.GetString("name", "")),
	}
	if err := cli.Validate(input); err != nil {
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

	resp, err := cliInstance.Store.Tags().Update(ctx, models.TagUpdateDTO{ID: input.ID, Name: input.Name})
	if err != nil {
		return nil, fmt.Errorf("tag update error: %w", err)
	}

	switch resp {
	case models.Updated:
		return &tagResult{Response: resp, ID: input.ID, Name: input.Name}, nil
	case models.Conflict:
		return nil, cli.NewResponseError(resp, "tag", input.ID, fmt.Sprintf("a tag named %q already exists", input.Name))
	default:
		return nil, cli.NewResponseError(resp, "tag", input.ID, "")
	}
}

func parseUpdateFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseID("id"); err != nil {
		return err
	}
	_, err := parser.ParseString("name")
	return err
}
