package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mia/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached repository indexes and lock files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			locks, _ := cmd.Flags().GetBool("locks")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{}

			switch {
			case all:
				opts.Index = true
				opts.Locks = true
			case locks:
				opts.Locks = true
			default:
				opts.Index = true
			}

			return c.app.Clean(cmd.Context(), workspaceFlag(cmd), opts)
		},
	}

	cmd.Flags().BoolP("locks", "l", false, "Remove the apps lock file of every definition")
	cmd.Flags().BoolP("all", "a", false, "Remove index caches and lock files")

	return cmd
}
