package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateAdultCmd())
	cmd.AddCommand(newPlayerCreateChildCmd())
	cmd.AddCommand(newPlayerCreateBotCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerSummaryCmd())
	cmd.AddCommand(newPlayerAvailableCmd())
	cmd.AddCommand(newPlayerProfileCmd())
	cmd.AddCommand(newPlayerDeleteCmd())

	return cmd
}

func newPlayerCreateAdultCmd() *cobra.Command {
	var user, email, birthDate, platform, profile string

	cmd := &cobra.Command{
		Use:   "create-adult",
		Short: "Register a new adult",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username":   user,
				"email":      email,
				"birth_date": birthDate,
				"platform":   platform,
			}
			if profile != "" {
				req["profile"] = profile
			}
			var result Player

			if err := client.Post(apiPath("players", "adults"), req, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform played on (required)")
	cmd.Flags().StringVar(&profile, "profile", "", "Profile: standard or gold (default: standard)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("birth-date")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

func newPlayerCreateChildCmd() *cobra.Command {
	var user, email, birthDate, platform, tutor string

	cmd := &cobra.Command{
		Use:   "create-child",
		Short: "Register a new child supervised by a tutor",
		Long:  "Register a new child. The acting player must be the tutor or the administrator.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tutor == "" {
				var err error
				if tutor, err = cfg.RequirePlayer(); err != nil {
					return err
				}
			}

			req := map[string]string{
				"username":   user,
				"email":      email,
				"birth_date": birthDate,
				"platform":   platform,
				"tutor":      tutor,
			}
			var result Player

			if err := client.Post(apiPath("players", "children"), req, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform played on (required)")
	cmd.Flags().StringVar(&tutor, "tutor", "", "First tutor (default: the acting player)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("birth-date")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

func newPlayerCreateBotCmd() *cobra.Command {
	var user, strategy string

	cmd := &cobra.Command{
		Use:   "create-bot",
		Short: "Register a new bot (administrator only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"username": user}
			if strategy != "" {
				req["strategy"] = strategy
			}
			var result Player

			if err := client.Post(apiPath("players", "bots"), req, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Bot strategy (default: basic)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := apiPath("players")
			if kind != "" {
				path += "?kind=" + kind
			}
			var result []Player

			if err := client.Get(path, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Only list players of this kind (administrator, adult, child, bot)")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <username>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get(apiPath("players", args[0]), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newPlayerSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <username>",
		Short: "Show a player summary as seen by the acting player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cfg.RequirePlayer(); err != nil {
				return err
			}
			var result Summary

			if err := client.Get(apiPath("players", args[0], "summary"), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newPlayerAvailableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "available <username>",
		Short: "Check whether a username can be registered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Availability

			if err := client.Get(apiPath("players", "available", args[0]), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newPlayerProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <username> <profile>",
		Short: "Change a player's profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"profile": args[1]}
			var result Player

			if err := client.Patch(apiPath("players", args[0], "profile"), req, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a player account and every reference to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(apiPath("players", args[0]), nil); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Deleted " + args[0])
			return nil
		},
	}
}
