// Package item holds all cli commands related to work items
// e.g., workboard item ...
package item

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/workboard/internal/cli/handler"
	"github.com/thenoetrevino/workboard/internal/models"
)

// ItemCmd returns the item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items", "workitem"},
		Short:   "Manage work items",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// tagNames reads the --tag values, trimmed, without blanks or duplicates
func tagNames(args *handler.Arguments) []string {
	raw := args.GetStringSlice("tag", nil)
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return models.UniqueTagNames(names)
}
