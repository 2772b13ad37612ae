package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
)

var (
	flagLimit int
	flagPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved runs",
	Long: `List the most recent saved runs, newest first.

In a terminal this opens an interactive table; press Enter to see a
run's map. With --plain, or when output is piped, a text table is
printed instead.

Examples:
  dungeon history
  dungeon history --limit 5
  dungeon history --plain`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to list")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text table instead of the interactive view")
}

func runHistory(_ *cobra.Command, _ []string) {
	logger := newLogger()
	store := openStore(logger, true)
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, flagLimit, width, height); err != nil {
			fatalf("running history view: %v", err)
		}
		return
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fatalf("%v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No saved runs yet.")
		fmt.Println()
		fmt.Println("Run 'dungeon generate --save' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-20s  %-6s  %-5s  %-7s  %-7s  %s\n", "ID", "Seed", "Preset", "Depth", "Size", "Enemies", "Date")
	fmt.Printf("  %-8s  %-20s  %-6s  %-5s  %-7s  %-7s  %s\n", "--", "----", "------", "-----", "----", "-------", "----")

	for _, r := range runs {
		preset := r.Preset
		if preset == "" {
			preset = "-"
		}
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-8s  %-20d  %-6s  %-5d  %-7s  %-7d  %s\n",
			id, r.Seed, preset, r.Depth, fmt.Sprintf("%dx%d", r.Size, r.Size), r.Enemies,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
