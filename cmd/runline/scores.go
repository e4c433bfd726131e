package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runline/runline/internal/config"
	"github.com/runline/runline/internal/games/runner"
	"github.com/runline/runline/internal/storage"
)

var flagResetScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the recorded high score",
	Long: `Display the best score recorded on this machine.

Examples:
  runline scores
  runline scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Clear the recorded high score")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high-score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetScores {
		if err := store.Delete(runner.HighScoreKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing high score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High score cleared.")
		return
	}

	game := runner.New(config.Default(), store)

	fmt.Printf("High Score - %s\n", game.Title())
	fmt.Println()

	best := game.State().Best
	if best == 0 {
		fmt.Println("No score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runline play' to set the first high score!")
		return
	}

	fmt.Printf("Best: %d\n", best)
}
