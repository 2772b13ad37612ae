package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/export"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List export formats",
	Long:  `Display all formats accepted by 'dungeon generate --format'.`,
	Args:  cobra.NoArgs,
	Run:   runFormats,
}

func runFormats(_ *cobra.Command, _ []string) {
	formats := export.List()

	if len(formats) == 0 {
		fmt.Println("No export formats registered.")
		return
	}

	fmt.Println("Export formats:")
	fmt.Println()

	for _, f := range formats {
		fmt.Printf("  %-8s %s\n", f.ID, f.Description)
	}

	fmt.Println()
	fmt.Println("Use 'dungeon generate --format <id>' to pick one.")
}
