package cli

import (
	"github.com/spf13/cobra"
)

func newPlatformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Platform commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlatformNames

			if err := client.Get(apiPath("platforms"), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: "Show the games and players of a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Platform

			if err := client.Get(apiPath("platforms", args[0]), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	})

	return cmd
}
