package cli

import (
	"github.com/spf13/cobra"
)

func newFriendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friend",
		Short: "Friendship commands (the acting player is the requester)",
	}

	cmd.AddCommand(newFriendListCmd())
	cmd.AddCommand(newFriendAddCmd())
	cmd.AddCommand(newFriendRemoveCmd())

	return cmd
}

func newFriendListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [username]",
		Short: "List the friends of a player (default: the acting player)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := cfg.Player
			if len(args) == 1 {
				username = args[0]
			}
			if username == "" {
				return errNoPlayer
			}
			var result Usernames

			if err := client.Get(apiPath("players", username, "friends"), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newFriendAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <friend>",
		Short: "Befriend a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}
			var result Usernames

			if err := client.Post(apiPath("players", player, "friends", args[0]), nil, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newFriendRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <friend>",
		Short: "End a friendship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}
			var result Usernames

			if err := client.Delete(apiPath("players", player, "friends", args[0]), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}
