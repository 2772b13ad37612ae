package export

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dungeon/internal/dungeon"
)

func init() {
	Register(asciiExporter{})
	Register(yamlExporter{})
	Register(jsonExporter{})
}

type asciiExporter struct{}

func (asciiExporter) ID() string          { return "ascii" }
func (asciiExporter) Description() string { return "Plain text map with a summary header" }

func (asciiExporter) Export(l *dungeon.Level) ([]byte, error) {
	return []byte(dungeon.RenderASCII(l)), nil
}

type yamlExporter struct{}

func (yamlExporter) ID() string          { return "yaml" }
func (yamlExporter) Description() string { return "YAML document with coordinates and variants" }

func (yamlExporter) Export(l *dungeon.Level) ([]byte, error) {
	return yaml.Marshal(NewDocument(l))
}

type jsonExporter struct{}

func (jsonExporter) ID() string          { return "json" }
func (jsonExporter) Description() string { return "JSON document with coordinates and variants" }

func (jsonExporter) Export(l *dungeon.Level) ([]byte, error) {
	return json.MarshalIndent(NewDocument(l), "", "  ")
}
