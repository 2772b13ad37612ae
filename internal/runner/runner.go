// Package runner ties level configuration, the generator and run history
// together for the CLI, the viewer and the SSH server.
package runner

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

// ErrNoStore is returned by Save when the runner has no run history.
var ErrNoStore = errors.New("runner: no run history available")

// Result is a generated level plus the inputs that produced it.
type Result struct {
	Level  *dungeon.Level
	Config config.LevelConfig // Effective config after preset and depth scaling
	Seed   uint64
	Depth  int
}

// Runner generates levels from a base config.
type Runner struct {
	base   config.LevelConfig
	preset config.DifficultyPreset
	dm     *config.DifficultyManager
	gen    *dungeon.Generator
	store  *storage.Store
	logger *log.Logger
}

// New creates a runner. The preset, if any, is applied to base once.
// store may be nil; logger may be nil.
func New(base config.LevelConfig, preset config.DifficultyPreset, store *storage.Store, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if preset != "" {
		config.ApplyPreset(&base, preset)
	}
	return &Runner{
		base:   base,
		preset: preset,
		dm:     config.NewDifficultyManager(base.Difficulty),
		gen:    dungeon.NewGenerator(dungeon.WithLogger(logger)),
		store:  store,
		logger: logger,
	}
}

// NewSeed returns a time-based seed.
func NewSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// HasStore reports whether runs can be saved.
func (r *Runner) HasStore() bool {
	return r.store != nil
}

// ConfigFor returns the effective config for a dungeon depth.
func (r *Runner) ConfigFor(depth int) config.LevelConfig {
	return r.dm.ForDepth(r.base, depth)
}

// EffectiveConfig returns the config for depth with scaling already
// applied and turned off, so loading it back does not scale twice.
func (r *Runner) EffectiveConfig(depth int) config.LevelConfig {
	cfg := r.ConfigFor(depth)
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	return cfg
}

// Generate validates the effective config for depth and generates a level.
func (r *Runner) Generate(seed uint64, depth int) (*Result, error) {
	cfg := r.ConfigFor(depth)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	level, err := r.gen.GenerateSeeded(cfg.ToGeneration(), seed)
	if err != nil {
		return nil, err
	}

	r.logger.Info("level generated",
		"seed", seed,
		"depth", depth,
		"size", level.Size,
		"enemies", len(level.Enemies),
	)
	return &Result{Level: level, Config: cfg, Seed: seed, Depth: depth}, nil
}

// Save records a result in run history and returns its ID.
func (r *Runner) Save(res *Result) (string, error) {
	if r.store == nil {
		return "", ErrNoStore
	}

	cfgYAML, err := config.Marshal(res.Config)
	if err != nil {
		return "", fmt.Errorf("runner: cannot encode config: %w", err)
	}

	stats := res.Level.Stats()
	id, err := r.store.SaveRun(storage.Run{
		Seed:      res.Seed,
		Preset:    string(r.preset),
		Depth:     res.Depth,
		Size:      stats.Size,
		Exits:     stats.Exits,
		Obstacles: stats.Obstacles,
		Items:     stats.Items,
		Enemies:   stats.Enemies,
		Config:    string(cfgYAML),
		Map:       dungeon.RenderASCII(res.Level),
	})
	if err != nil {
		return "", err
	}

	r.logger.Debug("run saved", "id", id)
	return id, nil
}
