// dungeon generates random grid dungeon levels in the terminal.
//
// Usage:
//
//	dungeon generate          - Generate a level and print it
//	dungeon view              - Browse levels interactively
//	dungeon history           - List saved runs
//	dungeon show <run-id>     - Print a saved run's map
//	dungeon delete <run-id>   - Remove a saved run
//	dungeon serve             - Start SSH server running the viewer
//	dungeon formats           - List export formats
//	dungeon config            - Print the effective level config
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible levels
//	--db <path>          - Set database path (default: ~/.dungeon/runs.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     uint64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Dungeon - Generate random grid levels in your terminal",
	Long: `Dungeon builds square grid levels with floor tiles, rocks, food,
corner exits and enemy spawn points around a central player.

Available commands:
  generate - Generate a level and print it (ascii, yaml, json)
  view     - Browse levels interactively
  history  - List saved runs
  show     - Print a saved run's map
  delete   - Remove a saved run
  serve    - Start SSH server running the viewer
  formats  - List export formats
  config   - Print the effective level config

Examples:
  dungeon generate --seed 42
  dungeon generate --preset hard --depth 3 --format json
  dungeon view
  dungeon serve --ssh :2222
  dungeon history`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dungeon/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(configCmd)
}
