package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordle",
		Short: "CLI tool for the wordle game API",
		Long: `wordle is a CLI tool for playing the Russian word guessing game
over its JSON API.

It supports practice games, the daily challenge with its leaderboard,
friend challenges, and player statistics. Player identity is stored in
a local file after the first request, so stats and streaks persist
across invocations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load the saved identity if not provided via flag/env
			if err := cfg.LoadPlayerID(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.PlayerID)
			client.OnPlayerID = cfg.SavePlayerID
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WORDLE_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerID, "player-id", cfg.PlayerID, "Player identity (env: WORDLE_PLAYER_ID)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerFile, "player-file", cfg.PlayerFile, "Player identity file path (env: WORDLE_PLAYER_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newDailyCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newChallengeCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
