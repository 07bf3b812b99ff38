package terrain

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
)

func TestClassify(t *testing.T) {
	biomes := []Biome{
		{Name: "ocean", Type: Water},
		{Name: "peaks", Type: Mountain, MinHeight: 0.9, MinMoisture: 0.9, MinHeat: 0.9},
		{Name: "forest", Type: Forest, MinHeight: 0.4, MinMoisture: 0.5, MinHeat: 0.3},
		{Name: "grass", Type: Grassland, MinHeight: 0.4, MinMoisture: 0.2, MinHeat: 0.3},
		{Name: "forest-dup", Type: Forest, MinHeight: 0.4, MinMoisture: 0.5, MinHeat: 0.3},
	}

	tests := []struct {
		name    string
		h, m, t float64
		want    int
	}{
		{"tightest fit wins", 0.5, 0.6, 0.4, 2},
		{"only loose match", 0.5, 0.3, 0.4, 3},
		{"everything matches", 0.95, 0.95, 0.95, 1},
		{"catch-all", 0.1, 0.1, 0.1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.h, tt.m, tt.t, biomes); got != tt.want {
				t.Errorf("Classify(%v,%v,%v) = %d (%s), want %d (%s)",
					tt.h, tt.m, tt.t, got, biomes[got].Name, tt.want, biomes[tt.want].Name)
			}
		})
	}
}

func TestClassifyFallbackToFirst(t *testing.T) {
	biomes := []Biome{
		{Name: "default", Type: Grassland, MinHeight: 0.8, MinMoisture: 0.8, MinHeat: 0.8},
		{Name: "snow", Type: Snow, MinHeight: 0.9, MinMoisture: 0, MinHeat: 0},
	}
	if got := Classify(0.2, 0.2, 0.2, biomes); got != 0 {
		t.Errorf("Classify with no match = %d, want 0", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	biomes := []Biome{
		{Type: Water},
		{Type: Beach, MinHeight: 0.3},
		{Type: Desert, MinHeight: 0.3, MinHeat: 0.6},
	}
	first := Classify(0.45, 0.2, 0.7, biomes)
	for i := 0; i < 50; i++ {
		if got := Classify(0.45, 0.2, 0.7, biomes); got != first {
			t.Fatalf("Classify changed between calls: %d then %d", first, got)
		}
	}
}

func TestPickTileSingleVariantSkipsRandom(t *testing.T) {
	b := Biome{Tiles: []TileVariant{{Tile: 142, Chance: 0.2}}}
	rng := rand.New(rand.NewSource(5))
	ref := rand.New(rand.NewSource(5))

	for i := 0; i < 10; i++ {
		if got := b.PickTile(rng); got != 142 {
			t.Fatalf("PickTile = %d, want 142", got)
		}
	}
	if got, want := rng.Int63(), ref.Int63(); got != want {
		t.Errorf("single-variant PickTile consumed random draws")
	}
}

func TestPickTileMultiVariant(t *testing.T) {
	tests := []struct {
		name  string
		tiles []TileVariant
		want  TileID
	}{
		{"heaviest wins", []TileVariant{{1, 0.3}, {2, 0.9}, {3, 0.5}}, 2},
		{"weight above every draw", []TileVariant{{1, 0}, {2, 1.5}}, 2},
		{"no weight exceeds draw", []TileVariant{{5, 0}, {6, 0}}, 5},
		{"equal weights keep list order", []TileVariant{{7, 0.5}, {8, 0.5}}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Biome{Tiles: tt.tiles}
			rng := rand.New(rand.NewSource(11))
			for i := 0; i < 100; i++ {
				if got := b.PickTile(rng); got != tt.want {
					t.Fatalf("PickTile draw %d = %d, want %d", i, got, tt.want)
				}
			}
		})
	}
}

func TestPickTileConsumesOneDraw(t *testing.T) {
	b := Biome{Tiles: []TileVariant{{1, 0.3}, {2, 0.9}}}
	rng := rand.New(rand.NewSource(3))
	ref := rand.New(rand.NewSource(3))

	b.PickTile(rng)
	ref.Float64()
	if got, want := rng.Int63(), ref.Int63(); got != want {
		t.Errorf("PickTile did not consume exactly one draw")
	}
}

func TestPickTileDoesNotReorderBiome(t *testing.T) {
	b := Biome{Tiles: []TileVariant{{1, 0.1}, {2, 0.9}}}
	b.PickTile(rand.New(rand.NewSource(1)))
	if b.Tiles[0].Tile != 1 || b.Tiles[1].Tile != 2 {
		t.Errorf("PickTile reordered tiles: %v", b.Tiles)
	}
}

func TestCellHeight(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	low := Biome{MinHeight: 0.4}
	high := Biome{MinHeight: 0.97}
	for i := 0; i < 200; i++ {
		if h := low.CellHeight(rng); h < 0.4 || h >= 0.5 {
			t.Fatalf("CellHeight = %f, want [0.4, 0.5)", h)
		}
		if h := high.CellHeight(rng); h < 0.97 || h > 1 {
			t.Fatalf("CellHeight = %f, want [0.97, 1]", h)
		}
	}
}

func TestBiomeTypeJSON(t *testing.T) {
	var b Biome
	if err := json.Unmarshal([]byte(`{"name":"lake","type":"Water","tiles":[{"tile":142,"chance":1}]}`), &b); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if b.Type != Water {
		t.Errorf("Type = %v, want water", b.Type)
	}

	err := json.Unmarshal([]byte(`{"type":"lava"}`), &b)
	if !errors.Is(err, ErrUnknownBiome) {
		t.Errorf("Unmarshal unknown type err = %v, want ErrUnknownBiome", err)
	}
	if Mountain.String() != "mountain" {
		t.Errorf("Mountain.String() = %q", Mountain.String())
	}
}
