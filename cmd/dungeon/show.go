package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagShowConfig bool

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print a saved run's map",
	Long: `Print the map of a saved run. The run ID may be shortened to any
unique prefix, as printed by 'dungeon history'.

Examples:
  dungeon show 1f3a9c2e
  dungeon show 1f3a --config`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Remove a saved run",
	Long: `Remove a saved run from history. The run ID may be shortened to any
unique prefix.

Examples:
  dungeon delete 1f3a9c2e`,
	Args: cobra.ExactArgs(1),
	Run:  runDelete,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowConfig, "config", false, "Also print the level config used for the run")
}

func runShow(_ *cobra.Command, args []string) {
	logger := newLogger()
	store := openStore(logger, true)
	defer store.Close()

	run, err := store.GetRun(args[0])
	if err != nil {
		fatalf("%v", err)
	}

	preset := run.Preset
	if preset == "" {
		preset = "none"
	}
	fmt.Printf("Run %s\n", run.ID)
	fmt.Printf("Seed: %d | Preset: %s | Depth: %d | Saved: %s\n\n",
		run.Seed, preset, run.Depth, run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Print(run.Map)

	if flagShowConfig {
		fmt.Println()
		fmt.Print(run.Config)
	}
}

func runDelete(_ *cobra.Command, args []string) {
	logger := newLogger()
	store := openStore(logger, true)
	defer store.Close()

	run, err := store.GetRun(args[0])
	if err != nil {
		fatalf("%v", err)
	}
	if err := store.DeleteRun(run.ID); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("Deleted run %s\n", run.ID)
}
