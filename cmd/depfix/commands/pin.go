package commands

import "github.com/spf13/cobra"

func (c *CLI) newPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin",
		Short: "Pin React in frontend/package.json and write the .npmrc files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Pin(cmd.Context(), rootFlag(cmd))
		},
	}
}
