// tetris is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetris play              - Play the game directly
//	tetris menu              - Start the interactive menu
//	tetris serve             - Start SSH server for remote play
//	tetris list              - List available game modes
//	tetris scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
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
	Use:   "tetris",
	Short: "TUI Tetris - Play falling blocks in your terminal",
	Long: `TUI Tetris is a terminal-based falling-block puzzle game.

Available commands:
  play     - Play directly (with mode and level selection)
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  list     - Show available game modes
  scores   - View high scores

Examples:
  tetris play
  tetris menu
  tetris serve --ssh :2222
  tetris scores tetris`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
