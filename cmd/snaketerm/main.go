// snaketerm is the classic snake game for the terminal.
//
// Usage:
//
//	snaketerm play              - Play in the current terminal
//	snaketerm scores            - Show the high-score table
//	snaketerm serve             - Serve the game over SSH
//
// Global flags:
//
//	--db <path>     - Scores database path (default: ~/.snaketerm/scores.db)
//	--seed <value>  - RNG seed for reproducible runs (0 = time-based)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketerm",
	Short: "Classic snake in your terminal",
	Long: `snaketerm is a terminal snake game: eat food, grow, speed up,
and try not to run into walls or yourself.

Examples:
  snaketerm play
  snaketerm play --difficulty hard
  snaketerm scores
  snaketerm serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snaketerm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
