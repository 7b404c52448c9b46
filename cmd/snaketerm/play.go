package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkarpenko/snaketerm/internal/config"
	"github.com/vkarpenko/snaketerm/internal/game"
	"github.com/vkarpenko/snaketerm/internal/platform/tui"
	"github.com/vkarpenko/snaketerm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Change direction
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy   - Slower base speed
  normal - Reference speed (100ms ticks, 50ms floor)
  hard   - Faster base speed

Examples:
  snaketerm play
  snaketerm play --difficulty hard
  snaketerm play --config ./my-config.yaml
  snaketerm play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset := config.DifficultyPreset(flagDifficulty)
	if !config.ValidPreset(preset) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	termW, termH, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine terminal size: %v\n", err)
		os.Exit(1)
	}
	if !cfg.Board.Fits(termW, termH) {
		fmt.Fprintf(os.Stderr, "Terminal too small! Please resize to at least %dx%d characters.\n",
			cfg.Board.MinCols, cfg.Board.MinRows)
		os.Exit(1)
	}

	rows, cols := cfg.Board.Grid(termW, termH)
	g, err := game.New(game.Config{
		Rows:          rows,
		Cols:          cols,
		BaseInterval:  time.Duration(cfg.Speed.BaseMs) * time.Millisecond,
		FloorInterval: time.Duration(cfg.Speed.FloorMs) * time.Millisecond,
		ScoreDivisor:  cfg.Speed.ScoreDivisor,
		FoodPoints:    cfg.Scoring.FoodPoints,
		Seed:          flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without persistence - the game still works
		store = nil
	}

	runErr := tui.Run(g, store, termW, termH)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
