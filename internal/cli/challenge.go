package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Friend challenge commands",
	}

	cmd.AddCommand(newChallengeCreateCmd())
	cmd.AddCommand(newChallengeGetCmd())

	return cmd
}

func newChallengeCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <word>",
		Short: "Create a friend challenge with your own word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.ToUpper(args[0])

			var result Challenge

			if err := client.Post("/api/v1/challenges", map[string]string{"word": word}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newChallengeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <token>",
		Short: "Check whether a challenge token is playable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Challenge

			if err := client.Get(fmt.Sprintf("/api/v1/challenges/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
