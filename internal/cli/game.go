package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game catalog, ownership and match commands",
	}

	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameSummaryCmd())
	cmd.AddCommand(newGameBuyCmd())
	cmd.AddCommand(newGameDropCmd())
	cmd.AddCommand(newGameGiftCmd())
	cmd.AddCommand(newGameResultCmd())
	cmd.AddCommand(newGameResultsCmd())
	cmd.AddCommand(newGameRatioCmd())
	cmd.AddCommand(newGameBotCmd())
	cmd.AddCommand(newGameChallengeCmd())

	return cmd
}

func newGameListCmd() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog games",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := apiPath("games")
			if platform != "" {
				path += "?" + url.Values{"platform": {platform}}.Encode()
			}
			var result GameNames

			if err := client.Get(path, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "Only list games available on this platform")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a game with its owners and bot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(apiPath("games", args[0]), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newGameSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <name>",
		Short: "Show a game summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Summary

			if err := client.Get(apiPath("games", args[0], "summary"), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newGameBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <name>",
		Short: "Acquire a game for the acting player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cfg.RequirePlayer(); err != nil {
				return err
			}
			var result Game

			if err := client.Post(apiPath("games", args[0], "owners"), nil, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newGameDropCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "drop <name>",
		Short: "Remove a game from a player and forget their results on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if owner == "" {
				var err error
				if owner, err = cfg.RequirePlayer(); err != nil {
					return err
				}
			}

			if err := client.Delete(apiPath("games", args[0], "owners", owner), nil); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Removed " + args[0] + " from " + owner)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner to remove (default: the acting player)")

	return cmd
}

func newGameGiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gift <name> <to>",
		Short: "Offer a game to another player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cfg.RequirePlayer(); err != nil {
				return err
			}
			req := map[string]string{"to": args[1]}
			var result Game

			if err := client.Post(apiPath("games", args[0], "gifts"), req, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newGameResultCmd() *cobra.Command {
	var winner, loser string

	cmd := &cobra.Command{
		Use:   "result <name>",
		Short: "Record the outcome of a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"winner": winner, "loser": loser}
			var result Result

			if err := client.Post(apiPath("games", args[0], "results"), req, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Winning player (required)")
	cmd.Flags().StringVar(&loser, "loser", "", "Losing player (required)")
	_ = cmd.MarkFlagRequired("winner")
	_ = cmd.MarkFlagRequired("loser")

	return cmd
}

func newGameResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results <name>",
		Short: "List the recorded matches of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Result

			if err := client.Get(apiPath("games", args[0], "results"), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newGameRatioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratio <name> <username>",
		Short: "Show the win ratio of a player on a game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Ratio

			if err := client.Get(apiPath("games", args[0], "ratio", args[1]), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newGameBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot <name> <bot>",
		Short: "Assign the bot opponent of a game (administrator only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"bot": args[1]}
			var result Game

			if err := client.Put(apiPath("games", args[0], "bot"), req, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newGameChallengeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenge <name>",
		Short: "Play one match against the game's bot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cfg.RequirePlayer(); err != nil {
				return err
			}
			var result Outcome

			if err := client.Post(apiPath("games", args[0], "challenges"), nil, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}
