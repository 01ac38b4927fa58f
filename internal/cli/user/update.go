package user

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

// UpdateCmd returns the user update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a user's name and email",
		Long: `Replace a user's name and email. Both are required.

Examples:
  workboard user update --id=1 --name="alicia" --email="alicia@example.com"
`,
		RunE: handler.Command(&updateHandler{}, parseUpdateFlags),
	}

	cmd.Flags().Int("id", 0, "User ID (required)")
	cmd.Flags().String("name", "", "New user name (required)")
	cmd.Flags().String("email", "", "New user email (required)")
	for _, name := range []string{"id", "name", "email"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type updateInput struct {
	ID    int    `flag:"id" validate:"gt=0"`
	Name  string `flag:"name" validate:"required,max=100"`
	Email string `flag:"email" validate:"required,email,max=100"`
}

type updateHandler struct{}

func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	input := updateInput{
		ID:    args.GetInt("id", 0),
		Name:  strings.TrimSpace(args.GetString("name", "")),
		Email: strings.TrimSpace(args.GetString("email", "")),
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

	resp, err := cliInstance.Store.Users().Update(ctx, models.UserUpdateDTO{
		ID:    input.ID,
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("user update error: %w", err)
	}

	switch resp {
	case models.Updated:
		return &userResult{Response: resp, ID: input.ID, Name: input.Name, Email: input.Email}, nil
	case models.Conflict:
		return nil, cli.NewResponseError(resp, "user", input.ID, "the name or email belongs to another user")
	default:
		return nil, cli.NewResponseError(resp, "user", input.ID, "")
	}
}

func parseUpdateFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseID("id"); err != nil {
		return err
	}
	for _, name := range []string{"name", "email"} {
		if _, err := parser.ParseString(name); err != nil {
			return err
		}
	}
	return nil
}
