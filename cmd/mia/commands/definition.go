package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mia/internal/app"
)

func (c *CLI) newDefinitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "definition",
		Short: "Manage the apps of a definition",
	}

	cmd.AddCommand(c.newLockCmd())
	cmd.AddCommand(c.newDownloadAppsCmd())

	return cmd
}

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock <definition>",
		Short: "Resolve the declared apps and write the apps lock file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forceLatest, _ := cmd.Flags().GetBool("force-latest")
			download, _ := cmd.Flags().GetBool("download")
			parallel, _ := cmd.Flags().GetInt("parallel")

			opts := app.LockOptions{
				ForceLatest: forceLatest,
				Download:    download,
				Parallelism: parallel,
			}

			return c.app.Lock(cmd.Context(), workspaceFlag(cmd), args[0], opts)
		},
	}

	cmd.Flags().Bool("force-latest", false, "Resolve every app to its latest version, ignoring pinned codes")
	cmd.Flags().BoolP("download", "d", false, "Download the locked apps after writing the lock file")
	cmd.Flags().IntP("parallel", "p", 1, "Number of concurrent downloads")

	return cmd
}

func (c *CLI) newDownloadAppsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dl-apps <definition>",
		Short: "Download the apps listed in the apps lock file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parallel, _ := cmd.Flags().GetInt("parallel")
			return c.app.DownloadApps(cmd.Context(), workspaceFlag(cmd), args[0], app.DownloadOptions{
				Parallelism: parallel,
			})
		},
	}

	cmd.Flags().IntP("parallel", "p", 1, "Number of concurrent downloads")

	return cmd
}
