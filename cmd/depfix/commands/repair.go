package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depfix/internal/app"
)

func (c *CLI) newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Clean, pin React and reinstall all packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, _ := cmd.Flags().GetString("cleanup-policy")

			opts := app.RepairOptions{
				Root:          rootFlag(cmd),
				CleanupPolicy: policy,
			}

			// Only an explicit flag overrides depfix.yaml.
			if cmd.Flags().Changed("parallel") {
				parallel, _ := cmd.Flags().GetBool("parallel")
				opts.Parallel = &parallel
			}

			return c.app.Repair(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("parallel", "p", false, "Install independent packages of a stage concurrently")
	cmd.Flags().String("cleanup-policy", "", "Cleanup failure handling: warn or fail (default from depfix.yaml, else warn)")

	return cmd
}
