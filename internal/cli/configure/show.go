package configure

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
	"github.com/thenoetrevino/workboard/internal/config"
)

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Show the configuration after the file, .env, WORKBOARD_* variables and
--db have been applied. A postgres password in the DSN is masked.`,
		RunE: handler.SimpleCommand(&showHandler{}),
	}

	handler.AddOutputFlags(cmd, "Minimal output (database location only)")

	return cmd
}

type showHandler struct{}

func (h *showHandler) Execute(ctx context.Context, _ *handler.Arguments) (any, error) {
	cfg, ok := cli.ConfigFromContext(ctx)
	if !ok {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	path, err := config.Path()
	if err != nil {
		path = ""
	}

	return &showResult{File: path, Config: newConfigView(cfg)}, nil
}
