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

// CreateCmd returns the user create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		Long: `Create a new user. Names and emails are unique.

Examples:
  workboard user create --name="alice" --email="alice@example.com"

  # Quiet mode for bash capture
  USER_ID=$(workboard user create --name="alice" --email="alice@example.com" --quiet)
`,
		RunE: handler.Command(&createHandler{}, parseCreateFlags),
	}

	cmd.Flags().String("name", "", "User name (required)")
	cmd.Flags().String("email", "", "User email (required)")
	for _, name := range []string{"name", "email"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "error", err)
		}
	}
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type createInput struct {
	Name  string `flag:"name" validate:"required,max=100"`
	Email string `flag:"email" validate:"required,email,max=100"`
}

type createHandler struct{}

func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	input := createInput{
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

	resp, id, err := cliInstance.Store.Users().Create(ctx, models.UserCreateDTO{Name: input.Name, Email: input.Email})
	if err != nil {
		return nil, fmt.Errorf("user creation error: %w", err)
	}
	if resp != models.Created {
		return nil, cli.NewResponseError(resp, "user", id, "the name or email is already taken")
	}

	return &userResult{Response: resp, ID: id, Name: input.Name, Email: input.Email}, nil
}

func parseCreateFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseString("name"); err != nil {
		return err
	}
	_, err := parser.ParseString("email")
	return err
}
