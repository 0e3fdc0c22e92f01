package cli

import (
	"github.com/spf13/cobra"
)

func newTutorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutor",
		Short: "Tutoring commands",
	}

	cmd.AddCommand(newTutorListCmd())
	cmd.AddCommand(newTutorAddCmd())
	cmd.AddCommand(newTutorRemoveCmd())
	cmd.AddCommand(newTutorChildrenCmd())

	return cmd
}

func newTutorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <child>",
		Short: "List the tutors of a child",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Usernames

			if err := client.Get(apiPath("players", args[0], "tutors"), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newTutorAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <child> <tutor>",
		Short: "Add a second tutor to a child (acting player must be a tutor)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Usernames

			if err := client.Post(apiPath("players", args[0], "tutors", args[1]), nil, &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newTutorRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <child> <tutor>",
		Short: "Remove a tutor from a child (acting player must be a tutor)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Usernames

			if err := client.Delete(apiPath("players", args[0], "tutors", args[1]), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}

func newTutorChildrenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "children <tutor>",
		Short: "List the children supervised by a tutor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Usernames

			if err := client.Get(apiPath("players", args[0], "children"), &result); err != nil {
				return err
			}

			render(cmd, result)
			return nil
		},
	}
}
