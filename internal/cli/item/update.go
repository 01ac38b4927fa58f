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

// UpdateCmd returns the item update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Overwrite a work item",
		Long: `Overwrite every mutable field of a work item. Fields left out are cleared:
omitting --description removes the description and omitting --tag removes
all tags.

Examples:
  workboard item update --id=3 --title="Login page" --assignee=1 --state=Active --tag=frontend
`,
		RunE: handler.Command(&updateHandler{}, parseUpdateFlags),
	}

	cmd.Flags().Int("id", 0, "Work item ID (required)")
	cmd.Flags().String("title", "", "Title (required)")
	cmd.Flags().Int("assignee", 0, "Assigned user ID (required)")
	cmd.Flags().String("state", "", "State: New, Active, Resolved, Closed or Removed (required)")
	for _, name := range []string{"id", "title", "assignee", "state"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}
	cmd.Flags().String("description", "", "Description (markdown)")
	cmd.Flags().StringSlice("tag", nil, "Tag name, repeat or comma-separate for several")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type updateInput struct {
	ID          int          `flag:"id" validate:"gt=0"`
	Title       string       `flag:"title" validate:"required,max=200"`
	AssignedTo  int          `flag:"assignee" validate:"gt=0"`
	Description *string      `flag:"description" validate:"omitempty,max=10000"`
	Tags        []string     `flag:"tag" validate:"dive,max=100"`
	State       models.State `flag:"state" validate:"state"`
}

type updateHandler struct{}

func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	state, err := handler.NewFlagParser(args.GetCmd()).ParseState("state")
	if err != nil {
		return nil, err
	}

	input := updateInput{
		ID:          args.GetInt("id", 0),
		Title:       strings.TrimSpace(args.GetString("title", "")),
		AssignedTo:  args.GetInt("assignee", 0),
		Description: args.GetStringPtr("description"),
		Tags:        tagNames(args),
		State:       state,
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

	resp, err := cliInstance.Store.WorkItems().Update(ctx, models.WorkItemUpdateDTO{
		ID:           input.ID,
		Title:        input.Title,
		AssignedToID: &input.AssignedTo,
		Description:  input.Description,
		Tags:         input.Tags,
		State:        input.State,
	})
	if err != nil {
		return nil, fmt.Errorf("work item update error: %w", err)
	}

	switch resp {
	case models.Updated:
		return &itemResult{Response: resp, ID: input.ID, Title: input.Title}, nil
	case models.BadRequest:
		return nil, cli.NewResponseError(resp, "work item", input.ID, "the work item or the assignee does not exist")
	case models.Conflict:
		return nil, cli.NewResponseError(resp, "work item", input.ID, fmt.Sprintf("another work item is titled %q", input.Title))
	default:
		return nil, cli.NewResponseError(resp, "work item", input.ID, "")
	}
}

func parseUpdateFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	for _, name := range []string{"id", "assignee"} {
		if _, err := parser.ParseID(name); err != nil {
			return err
		}
	}
	if _, err := parser.ParseString("title"); err != nil {
		return err
	}
	_, err := parser.ParseState("state")
	return err
}
