package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"Hexmap/internal/terrain"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestAssetMatchesDefault(t *testing.T) {
	s, err := LoadFS(os.DirFS("../../assets"), "terrain.json")
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if !reflect.DeepEqual(s, Default()) {
		t.Errorf("assets/terrain.json differs from Default():\n got %+v\nwant %+v", s, Default())
	}
}

func TestDecodeKeepsDefaultsForMissingKeys(t *testing.T) {
	s, err := Decode(strings.NewReader(`{"width": 10, "max_rivers": 0, "noise": "simplex"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	def := Default()
	if s.Width != 10 || s.MaxRivers != 0 || s.Noise != terrain.NoiseSimplex {
		t.Errorf("decoded = %d/%d/%s, want 10/0/simplex", s.Width, s.MaxRivers, s.Noise)
	}
	if s.Height != def.Height || s.Scale != def.Scale {
		t.Errorf("missing keys lost defaults: height %d scale %v", s.Height, s.Scale)
	}
	if !reflect.DeepEqual(s.Biomes, def.Biomes) {
		t.Errorf("missing biomes key did not keep default biomes")
	}
}

func TestDecodeReplacesLists(t *testing.T) {
	doc := `{"biomes": [{"name": "sea", "type": "water", "tiles": [{"tile": 1, "chance": 1}]}]}`
	s, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []terrain.Biome{{Name: "sea", Type: terrain.Water, Tiles: []terrain.TileVariant{{Tile: 1, Chance: 1}}}}
	if !reflect.DeepEqual(s.Biomes, want) {
		t.Errorf("Biomes = %+v, want %+v", s.Biomes, want)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty biomes", `{"biomes": []}`, terrain.ErrNoBiomes},
		{"unknown key", `{"heat_waves": []}`, nil},
		{"degenerate waves", `{"height_waves": [{"frequency": 1, "amplitude": 0}]}`, terrain.ErrDegenerateWaves},
		{"bad size", `{"width": -1}`, terrain.ErrInvalidSize},
		{"bad biome", `{"biomes": [{"type": "lava", "tiles": [{"tile": 1, "chance": 1}]}]}`, terrain.ErrUnknownBiome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatalf("Decode(%s) succeeded, want error", tt.doc)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Decode(%s) = %v, want %v", tt.doc, err, tt.want)
			}
		})
	}
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	Bind(fs, &cfg)
	if err := fs.Parse([]string{"-width", "20", "-noise", "simplex"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	fromFile := Default()
	fromFile.Width = 100
	fromFile.Height = 80
	fromFile.Noise = terrain.NoisePerlin

	Merge(&cfg, fromFile, Explicit(fs))
	if cfg.Width != 20 {
		t.Errorf("Width = %d, want 20 (explicit flag)", cfg.Width)
	}
	if cfg.Noise != terrain.NoiseSimplex {
		t.Errorf("Noise = %s, want simplex (explicit flag)", cfg.Noise)
	}
	if cfg.Height != 80 {
		t.Errorf("Height = %d, want 80 (from file)", cfg.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestFetchLocalFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "custom.json")
	if err := os.WriteFile(src, []byte(`{"width": 12, "height": 9}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	path, err := Fetch(t.Context(), src, filepath.Join(t.TempDir(), "fetched"))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if s.Width != 12 || s.Height != 9 {
		t.Errorf("fetched size = %dx%d, want 12x9", s.Width, s.Height)
	}
}
