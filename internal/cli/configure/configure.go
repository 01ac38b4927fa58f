// Package configure holds the cli commands that manage the config file
// e.g., workboard config ...
package configure

import (
	"github.com/spf13/cobra"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the workboard config file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
