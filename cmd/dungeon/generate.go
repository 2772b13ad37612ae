package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/export"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var (
	flagFormat string
	flagSave   bool
	flagAudit  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level and print it",
	Long: `Generate one level and write it to stdout.

The grid size is drawn from the configured range, then exits, rocks,
food and enemies are placed. Generation fails when the configured
densities leave no room for the player, exits and enemies.

Map legend (ascii format):
  .  floor      #  rock       %  food
  >  exit       @  player     e  enemy (2-9 when stacked)

Examples:
  dungeon generate
  dungeon generate --seed 42
  dungeon generate --preset hard --depth 5
  dungeon generate --format yaml --save
  dungeon generate --config ./my-level.yaml --audit`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	addLevelFlags(generateCmd)
	generateCmd.Flags().StringVarP(&flagFormat, "format", "f", "ascii", "Output format (see 'dungeon formats')")
	generateCmd.Flags().BoolVar(&flagSave, "save", false, "Save the run to history")
	generateCmd.Flags().BoolVar(&flagAudit, "audit", false, "Check the level for placement collisions")
}

func runGenerate(_ *cobra.Command, _ []string) {
	logger := newLogger()

	exporter, err := export.Lookup(flagFormat)
	if err != nil {
		fatalf("%v", err)
	}

	var store *storage.Store
	if flagSave {
		store = openStore(logger, true)
		defer store.Close()
	}

	r := newRunner(logger, store)
	res, err := r.Generate(resolveSeed(), flagDepth)
	if err != nil {
		fatalf("%v", err)
	}

	if flagAudit {
		if auditErr := dungeon.Audit(res.Level); auditErr != nil {
			fatalf("audit failed: %v", auditErr)
		}
		logger.Info("audit passed", "cells", res.Level.Grid.Len())
	}

	data, err := exporter.Export(res.Level)
	if err != nil {
		fatalf("export %s: %v", flagFormat, err)
	}
	os.Stdout.Write(data)

	if flagSave {
		id, saveErr := r.Save(res)
		if saveErr != nil {
			fatalf("%v", saveErr)
		}
		fmt.Fprintf(os.Stderr, "Saved run %s (seed %d)\n", id, res.Seed)
	}
}
