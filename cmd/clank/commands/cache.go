package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the precompiled header cache",
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached PCH artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			return c.app.CacheClear(cmd.Context(), cacheDir)
		},
	}
	clearCmd.Flags().String("cache-dir", "", "Override the PCH cache directory")

	cmd.AddCommand(clearCmd)
	return cmd
}
