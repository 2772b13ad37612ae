package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/runner"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var (
	// Level flags shared by generate, view, serve and config
	flagConfig string
	flagPreset string
	flagDepth  int
)

// addLevelFlags registers the level selection flags on cmd.
func addLevelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagDepth, "depth", 0, "Dungeon depth (harder levels deeper down)")
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates the CLI logger on stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dungeon",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// resolveSeed returns --seed or a time-based seed when it is 0.
func resolveSeed() uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return runner.NewSeed()
}

// levelSelection is the resolved result of the level flags.
type levelSelection struct {
	config config.LevelConfig
	preset config.DifficultyPreset
	source string // Config file path, or embedded/builtin
}

// loadLevelConfig resolves and validates the level config and preset flags.
func loadLevelConfig(logger *log.Logger) (levelSelection, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return levelSelection{}, err
	}

	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return levelSelection{}, err
	}
	logger.Debug("level config loaded", "source", source)

	if err := cfg.Validate(); err != nil {
		return levelSelection{}, fmt.Errorf("%s: %w", source, err)
	}
	if flagDepth < 0 {
		return levelSelection{}, fmt.Errorf("depth must be >= 0, got %d", flagDepth)
	}
	return levelSelection{config: cfg, preset: preset, source: source}, nil
}

// openStore opens run history. When required is false a failure only
// logs a warning and returns nil.
func openStore(logger *log.Logger, required bool) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if required {
			fatalf("could not open run history: %v", err)
		}
		logger.Warn("could not open run history", "error", err)
		return nil
	}
	return store
}

// newRunner builds a runner from the level flags.
func newRunner(logger *log.Logger, store *storage.Store) *runner.Runner {
	sel, err := loadLevelConfig(logger)
	if err != nil {
		fatalf("%v", err)
	}
	return runner.New(sel.config, sel.preset, store, logger)
}
