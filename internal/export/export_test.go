package export

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dungeon/internal/dungeon"
)

func testLevel(t *testing.T) *dungeon.Level {
	t.Helper()
	cfg := dungeon.DefaultGenerationConfig()
	cfg.MinGridSize = 10
	cfg.MaxGridSize = 10
	level, err := dungeon.NewGenerator().GenerateSeeded(cfg, 42)
	if err != nil {
		t.Fatalf("GenerateSeeded failed: %v", err)
	}
	return level
}

func TestBuiltinFormatsRegistered(t *testing.T) {
	formats := List()
	want := []string{"ascii", "json", "yaml"}
	if len(formats) != len(want) {
		t.Fatalf("expected %d formats, got %d", len(want), len(formats))
	}
	for i, id := range want {
		if formats[i].ID != id {
			t.Errorf("format %d: expected %s, got %s", i, id, formats[i].ID)
		}
		if formats[i].Description == "" {
			t.Errorf("format %s has no description", id)
		}
	}
	_, err := Lookup("png")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "available: ascii, json, yaml") {
		t.Errorf("error should list known formats, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(asciiExporter{})
}

func TestASCIIExport(t *testing.T) {
	level := testLevel(t)
	exp, err := Lookup("ascii")
	if err != nil {
		t.Fatal(err)
	}
	out, err := exp.Export(level)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if string(out) != dungeon.RenderASCII(level) {
		t.Error("ascii export should match RenderASCII")
	}
}

func TestYAMLExportDecodes(t *testing.T) {
	level := testLevel(t)
	exp, _ := Lookup("yaml")
	out, err := exp.Export(level)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("yaml output does not decode: %v", err)
	}
	if doc.Seed != 42 || doc.Size != 10 {
		t.Errorf("expected seed 42 size 10, got %d %d", doc.Seed, doc.Size)
	}
	if len(doc.Obstacles) != 40 || len(doc.Items) != 10 || len(doc.Enemies) != 3 {
		t.Errorf("counts wrong: %d obstacles, %d items, %d enemies",
			len(doc.Obstacles), len(doc.Items), len(doc.Enemies))
	}
	if doc.Player != (Point{X: 5, Y: 5}) {
		t.Errorf("expected player (5,5), got %+v", doc.Player)
	}
	if len(doc.Floor) != 10 || len(doc.Floor[0]) != 10 {
		t.Errorf("floor should be 10x10")
	}
}

func TestJSONExport(t *testing.T) {
	level := testLevel(t)
	exp, _ := Lookup("json")
	out, err := exp.Export(level)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(string(out), `"exits"`) {
		t.Error("json output missing exits key")
	}

	var doc Document
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("json output does not decode: %v", err)
	}
	if len(doc.Exits) != 1 || doc.Exits[0] != (Point{X: 0, Y: 0}) {
		t.Errorf("expected exit at (0,0), got %+v", doc.Exits)
	}
}
