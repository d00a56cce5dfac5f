package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depfix/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove node_modules directories and lockfiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, _ := cmd.Flags().GetString("cleanup-policy")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Root:          rootFlag(cmd),
				CleanupPolicy: policy,
			})
		},
	}

	cmd.Flags().String("cleanup-policy", "", "Cleanup failure handling: warn or fail (default from depfix.yaml, else warn)")

	return cmd
}
