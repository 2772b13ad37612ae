// Package export turns generated levels into text formats for the CLI
// and other collaborators. Formats register themselves in init().
package export

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-dungeon/internal/dungeon"
)

// Exporter encodes a generated level. Exporters are stateless and shared.
type Exporter interface {
	// ID is the value accepted by --format (e.g., "ascii", "yaml").
	ID() string

	// Description returns a one-line summary for listings.
	Description() string

	// Export encodes the level.
	Export(l *dungeon.Level) ([]byte, error)
}

// FormatInfo describes a registered format.
type FormatInfo struct {
	ID          string
	Description string
}

var (
	mu        sync.RWMutex
	exporters = make(map[string]Exporter)
)

// Register makes e available under e.ID().
// Panics on a duplicate ID, since formats register from init().
func Register(e Exporter) {
	mu.Lock()
	defer mu.Unlock()

	id := e.ID()
	if _, dup := exporters[id]; dup {
		panic(fmt.Sprintf("export: format %q already registered", id))
	}
	exporters[id] = e
}

// List returns the registered formats sorted by ID.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(exporters))
	for id, e := range exporters {
		result = append(result, FormatInfo{ID: id, Description: e.Description()})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the exporter for id. The error for an unknown id names
// the formats that do exist.
func Lookup(id string) (Exporter, error) {
	mu.RLock()
	e, ok := exporters[id]
	mu.RUnlock()
	if ok {
		return e, nil
	}

	ids := make([]string, 0)
	for _, f := range List() {
		ids = append(ids, f.ID)
	}
	return nil, fmt.Errorf("export: unknown format %q (available: %s)", id, strings.Join(ids, ", "))
}
