package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Statistics commands",
	}

	cmd.AddCommand(newStatsDailyCmd())
	cmd.AddCommand(newStatsMeCmd())
	cmd.AddCommand(newStatsPlayerCmd())

	return cmd
}

func newStatsDailyCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show the daily challenge leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/stats/daily"
			if date != "" {
				path += "?date=" + date
			}

			var result Leaderboard

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD), defaults to today")

	return cmd
}

func newStatsMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show your lifetime statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerStats

			if err := client.Get("/api/v1/stats/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <player-id>",
		Short: "Show another player's lifetime statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerStats

			if err := client.Get(fmt.Sprintf("/api/v1/stats/players/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
