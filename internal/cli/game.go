package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameGuessCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	var mode string
	var token string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"mode": mode}
			if token != "" {
				body["challenge_token"] = token
			}

			var result Game

			if err := client.Post("/api/v1/games", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "practice", "Game mode: practice, daily, friend")
	cmd.Flags().StringVarP(&token, "token", "t", "", "Challenge token (friend mode)")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Get game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGuessCmd() *cobra.Command {
	var elapsed int

	cmd := &cobra.Command{
		Use:   "guess <game-id> <word>",
		Short: "Submit a guess",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			word := strings.ToUpper(args[1])

			body := map[string]any{
				"word": word,
			}
			if elapsed > 0 {
				body["elapsed_seconds"] = elapsed
			}

			var result Game

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/guesses", id), body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&elapsed, "elapsed", "e", 0, "Seconds spent on the game so far")

	return cmd
}

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Daily challenge commands",
	}

	cmd.AddCommand(newDailyCanPlayCmd())

	return cmd
}

func newDailyCanPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "can-play",
		Short: "Check whether today's word is still available to you",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CanPlay

			if err := client.Get("/api/v1/daily/can-play", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
