package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/runline/runline/internal/config"
	"github.com/runline/runline/internal/core"
	"github.com/runline/runline/internal/games/runner"
	"github.com/runline/runline/internal/platform/tui"
	"github.com/runline/runline/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run directly in the current terminal.

Controls:
  Space/Up/W - Jump
  P          - Pause
  R          - Restart
  B/Esc      - Back (when paused or after game over)
  Ctrl+S     - Save screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, gentler ramp, wider gaps
  normal - Default pacing
  hard   - Faster start, steeper ramp, tighter gaps
  fixed  - No progression, speed stays at the starting value

Examples:
  runline play
  runline play --difficulty easy
  runline play --seed 42
  runline play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size early so the first frame matches the window
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Load game config
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintln(os.Stderr, "Valid presets: easy, normal, hard, fixed")
			os.Exit(1)
		}
		config.ApplyPreset(&gameCfg, preset)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high-score database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	// A nil *storage.Store must stay a nil interface inside the runner.
	var kv runner.KV
	if store != nil {
		kv = store
	}
	game := runner.New(gameCfg, kv)

	// Run the game
	runErr := tui.Run(game, rt)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
