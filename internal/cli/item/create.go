package item

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

// CreateCmd returns the item create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new work item",
		Long: `Create a new work item in the New state. Titles are unique. Tags that do
not exist yet are created.

Examples:
  # Create with tags
  workboard item create --title="Login page" --tag=frontend --tag=urgent

  # With a markdown description
  workboard item create --title="Login page" --description="Use the **new** form"

  # Quiet mode for bash capture
  ITEM_ID=$(workboard item create --title="Login page" --quiet)
`,
		RunE: handler.Command(&createHandler{}, parseCreateFlags),
	}

	cmd.Flags().String("title", "", "Work item title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("description", "", "Description (markdown)")
	cmd.Flags().StringSlice("tag", nil, "Tag name, repeat or comma-separate for several")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type createInput struct {
	Title       string   `flag:"title" validate:"required,max=200"`
	Description *string  `flag:"description" validate:"omitempty,max=10000"`
	Tags        []string `flag:"tag" validate:"dive,max=100"`
}

type createHandler struct{}

func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	input := createInput{
		Title:       strings.TrimSpace(args.GetString("title", "")),
		Description: args.GetStringPtr("description"),
		Tags:        tagNames(args),
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

	resp, id, err := cliInstance.Store.WorkItems().Create(ctx, models.WorkItemCreateDTO{
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("work item creation error: %w", err)
	}
	if resp != models.Created {
		return nil, cli.NewResponseError(resp, "work item", id, fmt.Sprintf("a work item titled %q already exists", input.Title))
	}

	return &itemResult{Response: resp, ID: id, Title: input.Title}, nil
}

func parseCreateFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseString("title")
	return err
}
