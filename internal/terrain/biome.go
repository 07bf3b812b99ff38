package terrain

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// TileID indexes a tile in the painter's atlas.
type TileID int

// BiomeType classifies a cell.
type BiomeType int

const (
	Water BiomeType = iota
	Beach
	Grassland
	Forest
	Swamp
	Desert
	Tundra
	Mountain
	Snow
)

var biomeNames = [...]string{
	Water:     "water",
	Beach:     "beach",
	Grassland: "grassland",
	Forest:    "forest",
	Swamp:     "swamp",
	Desert:    "desert",
	Tundra:    "tundra",
	Mountain:  "mountain",
	Snow:      "snow",
}

func (b BiomeType) String() string {
	if b < 0 || int(b) >= len(biomeNames) {
		return fmt.Sprintf("BiomeType(%d)", int(b))
	}
	return biomeNames[b]
}

func (b BiomeType) MarshalText() ([]byte, error) {
	if b < 0 || int(b) >= len(biomeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBiome, int(b))
	}
	return []byte(biomeNames[b]), nil
}

func (b *BiomeType) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range biomeNames {
		if n == name {
			*b = BiomeType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownBiome, text)
}

// TileVariant is one visual variant of a biome with its chance weight.
type TileVariant struct {
	Tile   TileID  `json:"tile"`
	Chance float64 `json:"chance"`
}

// Biome is a classification bucket over (height, moisture, heat).
type Biome struct {
	Name        string        `json:"name"`
	Type        BiomeType     `json:"type"`
	MinHeight   float64       `json:"min_height"`
	MinMoisture float64       `json:"min_moisture"`
	MinHeat     float64       `json:"min_heat"`
	Tiles       []TileVariant `json:"tiles"`
}

// Matches reports whether the sample clears every threshold.
func (b Biome) Matches(height, moisture, heat float64) bool {
	return height >= b.MinHeight && moisture >= b.MinMoisture && heat >= b.MinHeat
}

// Fit is the total slack above the thresholds. Lower is a tighter match.
func (b Biome) Fit(height, moisture, heat float64) float64 {
	return (height - b.MinHeight) + (moisture - b.MinMoisture) + (heat - b.MinHeat)
}

// Classify returns the index of the best matching biome. When nothing
// matches, biomes[0] is the catch-all and index 0 is returned.
func Classify(height, moisture, heat float64, biomes []Biome) int {
	best := -1
	var bestFit float64
	for i, b := range biomes {
		if !b.Matches(height, moisture, heat) {
			continue
		}
		fit := b.Fit(height, moisture, heat)
		if best < 0 || fit < bestFit {
			best, bestFit = i, fit
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// PickTile selects a tile variant. A single variant is returned without
// touching rng. Otherwise one draw r is compared against each weight in
// descending order and the first weight above r wins; the heaviest variant
// is the default. Weights are not a cumulative distribution.
func (b Biome) PickTile(rng *rand.Rand) TileID {
	switch len(b.Tiles) {
	case 0:
		return 0
	case 1:
		return b.Tiles[0].Tile
	}

	r := rng.Float64()
	sorted := make([]TileVariant, len(b.Tiles))
	copy(sorted, b.Tiles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Chance > sorted[j].Chance
	})
	for _, v := range sorted {
		if v.Chance > r {
			return v.Tile
		}
	}
	return sorted[0].Tile
}

// CellHeight jitters the biome's height floor by up to 0.1.
func (b Biome) CellHeight(rng *rand.Rand) float64 {
	return clamp01(b.MinHeight + rng.Float64()*0.1)
}
