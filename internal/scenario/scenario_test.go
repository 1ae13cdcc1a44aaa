package scenario

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/tropical32/line-of-sight/internal/fov"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 scenarios, got %d", registry.Count())
	}

	ids := registry.IDs()
	if len(ids) == 0 || ids[0] != "reference" {
		t.Errorf("Expected reference scenario first, got %v", ids)
	}
	if registry.GetByID("missing") != nil {
		t.Error("GetByID should return nil for unknown IDs")
	}
}

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}
	return registry
}

func TestRegistryLookup(t *testing.T) {
	registry := mustRegistry(t)

	if def, err := registry.Lookup("pillar"); err != nil || def.ID != "pillar" {
		t.Errorf("Lookup(pillar) = %v, %v", def, err)
	}

	_, err := registry.Lookup("missing")
	if !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("Expected ErrUnknownScenario, got %v", err)
	}
	if !strings.Contains(err.Error(), "reference, pillar, cross, open") {
		t.Errorf("Error should list known scenarios, got %q", err)
	}
}

func TestReferenceScenario(t *testing.T) {
	def := mustRegistry(t).GetByID("reference")
	if def == nil {
		t.Fatal("reference scenario not found")
	}

	g, err := def.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.Width() != 16 || g.Height() != 17 {
		t.Fatalf("Size %dx%d, want 16x17", g.Width(), g.Height())
	}
	if g.Count(fov.Blocking) != 11 {
		t.Errorf("Expected 11 blocking cells, got %d", g.Count(fov.Blocking))
	}

	fov.NewEngine(g).FullScan(def.OriginPoint(), def.Radius)

	if n := g.Count(fov.Visible); n != 188 {
		t.Errorf("Expected 188 visible cells, got %d", n)
	}
}

func TestCrossScenarioCorridorsVisible(t *testing.T) {
	def := mustRegistry(t).GetByID("cross")
	g, err := def.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	fov.NewEngine(g).FullScan(def.OriginPoint(), def.Radius)

	for _, c := range def.Open {
		if g.Get(c[0], c[1]) != fov.Visible {
			t.Errorf("Corridor cell %v not visible", c)
		}
	}
	if n := g.Count(fov.Visible); n != len(def.Open) {
		t.Errorf("Expected %d visible cells, got %d", len(def.Open), n)
	}
}

func TestBuildRejectsBadDefs(t *testing.T) {
	tests := []struct {
		name string
		def  Def
	}{
		{"zero width", Def{ID: "a", Width: 0, Height: 3}},
		{"negative height", Def{ID: "b", Width: 3, Height: -1}},
		{"unknown fill", Def{ID: "c", Width: 3, Height: 3, Fill: "lava"}},
		{"missing id", Def{Width: 3, Height: 3}},
		{"fractional origin x", Def{ID: "d", Width: 3, Height: 3, Origin: [2]float32{1.5, 1}}},
		{"fractional origin y", Def{ID: "e", Width: 3, Height: 3, Origin: [2]float32{1, 0.25}}},
	}

	for _, tt := range tests {
		if _, err := tt.def.Build(); !errors.Is(err, ErrInvalidScenario) {
			t.Errorf("%s: expected ErrInvalidScenario, got %v", tt.name, err)
		}
	}
}

func TestBuildIgnoresOutOfBoundsCells(t *testing.T) {
	def := Def{ID: "oob", Width: 2, Height: 2, Blocking: [][2]int{{5, 5}, {-1, 0}, {1, 1}}}

	g, err := def.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.Count(fov.Blocking) != 1 {
		t.Errorf("Expected 1 blocking cell, got %d", g.Count(fov.Blocking))
	}
}

func TestValidateAllRejectsDuplicates(t *testing.T) {
	defs := []Def{
		{ID: "a", Width: 2, Height: 2},
		{ID: "a", Width: 3, Height: 3},
	}

	if _, err := validateAll(defs); !errors.Is(err, ErrInvalidScenario) {
		t.Errorf("Expected ErrInvalidScenario for duplicate IDs, got %v", err)
	}
	if _, err := validateAll(defs[:1]); err != nil {
		t.Errorf("Single valid scenario rejected: %v", err)
	}
}

func TestEmbeddedScenariosValid(t *testing.T) {
	for _, def := range mustRegistry(t).All() {
		if err := def.Validate(); err != nil {
			t.Errorf("Embedded scenario %s invalid: %v", def.ID, err)
		}
		x, y := def.OriginCell()
		if def.OriginPoint() != (fov.Point{X: float32(x), Y: float32(y)}) {
			t.Errorf("Scenario %s origin cell and point disagree", def.ID)
		}
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, err := decode[Palette]("missing.json"); err == nil {
		t.Error("Expected error loading a missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	if red, _ := ParseHexColor("#FF0000"); red != tcell.NewRGBColor(255, 0, 0) {
		t.Error("ParseHexColor(#FF0000) should be pure red")
	}
}

func TestPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	for _, c := range []fov.Cell{fov.Empty, fov.Blocking, fov.Visible, fov.Viewer} {
		if p.Color(c) == tcell.ColorWhite {
			t.Errorf("Palette entry for %v is missing or malformed", c)
		}
	}

	if (Palette{}).Color(fov.Visible) != tcell.ColorWhite {
		t.Error("Empty palette should fall back to white")
	}
}
