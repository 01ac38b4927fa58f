// Package cmd wires the workboard command tree
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli"
	"github.com/thenoetrevino/workboard/internal/cli/configure"
	"github.com/thenoetrevino/workboard/internal/cli/item"
	"github.com/thenoetrevino/workboard/internal/cli/tag"
	"github.com/thenoetrevino/workboard/internal/cli/user"
	"github.com/thenoetrevino/workboard/internal/config"
	"github.com/thenoetrevino/workboard/internal/logging"
)

// NewRootCmd builds the root command with every command group attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workboard",
		Short: "Workboard - a kanban board for tags, users and work items",
		Long: `Workboard keeps a kanban board of work items, the users they are assigned
to and the tags that group them, in SQLite or Postgres.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/workboard/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path, overrides the config file")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(tag.TagCmd())
	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(configure.ConfigCmd())

	return rootCmd
}

// setup loads the configuration, starts logging and hands the config to the
// command through its context
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := logging.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		// Logging is best effort, the command can still run
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	slog.Debug("command starting", "command", cmd.CommandPath(), "driver", cfg.Database.Driver)

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Database.Driver = config.DriverSQLite
		cfg.Database.Path = dbPath
	}

	return cfg, nil
}

// Execute runs the command tree against os.Args
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && strings.HasPrefix(err.Error(), "required flag") {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return err
}
