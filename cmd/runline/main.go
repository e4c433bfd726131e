// runline is an endless-runner arcade game for the terminal.
//
// Usage:
//
//	runline play             - Play the runner
//	runline scores           - Show the recorded high score
//	runline serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for a reproducible obstacle course
//	--db <path>     - Set database path (default: ~/.runline/runline.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runline",
	Short: "Runline - Endless runner for your terminal",
	Long: `Runline is a terminal-based endless runner: sprint through a scrolling
course, jump over obstacles, and chase your own high score.

Available commands:
  play     - Play the runner directly
  serve    - Start SSH server for remote play
  scores   - View the recorded high score

Examples:
  runline play
  runline play --difficulty hard
  runline play --seed 42
  runline serve --ssh :2222
  runline scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runline/runline.db", "Path to high-score database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
