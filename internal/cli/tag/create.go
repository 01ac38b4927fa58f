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

// CreateCmd returns the tag create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new tag",
		Long: `Create a new tag. Tag names are unique.

Examples:
  # Create tag (human-readable output)
  workboard tag create --name="bug"

  # JSON output for agents
  workboard tag create --name="bug" --json

  # Quiet mode for bash capture
  TAG_ID=$(workboard tag create --name="bug" --quiet)
`,
		RunE: handler.Command(&createHandler{}, parseCreateFlags),
	}

	// Required flags
	cmd.Flags().String("name", "", "Tag name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Agent-friendly flags
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type createInput struct {
	Name string `flag:"name" validate:"required,max=100"`
}

// createHandler implements handler.Handler for tag creation
type createHandler struct{}

// Execute implements the Handler interface
func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	input := createInput{Name: strings.TrimSpace(args.GetString("name", ""))}
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

	resp, id, err := cliInstance.Store.Tags().Create(ctx, models.TagCreateDTO{Name: input.Name})
	if err != nil {
		return nil, fmt.Errorf("tag creation error: %w", err)
	}
	if resp != models.Created {
		return nil, cli.NewResponseError(resp, "tag", id, fmt.Sprintf("a tag named %q already exists", input.Name))
	}

	return &tagResult{Response: resp, ID: id, Name: input.Name}, nil
}

func parseCreateFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseString("name")
	return err
}
