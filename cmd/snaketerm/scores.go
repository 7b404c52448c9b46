package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkarpenko/snaketerm/internal/platform/tui"
	"github.com/vkarpenko/snaketerm/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display recorded runs, best first.

Shows an interactive scrollable table when attached to a terminal;
use --plain for machine-friendly output.

Examples:
  snaketerm scores
  snaketerm scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores without the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - snaketerm")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snaketerm play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		result := "crashed"
		if entry.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n",
			i+1, entry.Score, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil && stats.Games > 0 {
		fmt.Println()
		fmt.Printf("Best: %d over %d games\n", stats.HighScore, stats.Games)
	}
}
