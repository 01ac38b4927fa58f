package configure

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
	"github.com/thenoetrevino/workboard/internal/config"
)

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long: `Write the default configuration to $XDG_CONFIG_HOME/workboard/config.yaml
(or ~/.config/workboard/config.yaml). An existing file is kept unless --force is given.

Examples:
  workboard config init
  workboard config init --force --json
`,
		RunE: handler.SimpleCommand(&initHandler{}),
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	handler.AddOutputFlags(cmd, "Minimal output (path only)")

	return cmd
}

type initHandler struct{}

func (h *initHandler) Execute(_ context.Context, args *handler.Arguments) (any, error) {
	path, err := config.Init(args.GetBool("force"))
	if errors.Is(err, config.ErrConfigExists) {
		return nil, fmt.Errorf("%w (use --force to overwrite)", err)
	}
	if err != nil {
		return nil, err
	}

	return &initResult{Path: path, Config: newConfigView(config.Default())}, nil
}
