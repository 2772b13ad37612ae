package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse levels interactively",
	Long: `Open the level viewer in the terminal.

Controls:
  R/Space    - Next seed
  Shift+R    - Random seed
  +/>        - One level deeper
  -/<        - One level up
  S          - Save run to history
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Examples:
  dungeon view
  dungeon view --seed 42 --depth 3
  dungeon view --preset easy`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	addLevelFlags(viewCmd)
}

func runView(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatalf("view needs an interactive terminal; use 'dungeon generate' instead")
	}

	logger := newLogger()

	// History is optional for the viewer
	store := openStore(logger, false)
	if store != nil {
		defer store.Close()
	}

	r := newRunner(logger, store)

	// Keep log output from drawing over the viewer
	logger.SetOutput(io.Discard)

	if err := tui.RunViewer(r, resolveSeed(), flagDepth); err != nil {
		fatalf("running viewer: %v", err)
	}
}
