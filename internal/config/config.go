// Package config supplies terrain.Settings from built-in defaults, JSON
// settings files, command-line flags and remote sources.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"

	"Hexmap/internal/terrain"
)

// Atlas indices in the default tileset.
const (
	TileWater      terrain.TileID = 142
	TileSand       terrain.TileID = 582
	TileGrass      terrain.TileID = 92
	TileFlower     terrain.TileID = 291
	TileLeaves     terrain.TileID = 296
	TileDirt       terrain.TileID = 193
	TileMossyStone terrain.TileID = 31
	TileSnowGrass  terrain.TileID = 570
	TileStone      terrain.TileID = 578
	TileDarkStone  terrain.TileID = 5
)

// Default returns the built-in settings. assets/terrain.json carries the
// same values.
func Default() terrain.Settings {
	return terrain.Settings{
		Width:    64,
		Height:   48,
		Scale:    0.08,
		CellSize: 16,
		HeightWaves: []terrain.Wave{
			{Frequency: 1, Amplitude: 1},
			{Frequency: 2, Amplitude: 0.5},
			{Frequency: 4, Amplitude: 0.25},
		},
		MoistureWaves: []terrain.Wave{
			{Frequency: 0.5, Amplitude: 1, Seed: 100},
			{Frequency: 1.5, Amplitude: 0.3, Seed: 100},
		},
		TemperatureWaves: []terrain.Wave{
			{Frequency: 0.3, Amplitude: 1, Seed: 200},
		},
		Biomes: []terrain.Biome{
			{Name: "ocean", Type: terrain.Water, Tiles: []terrain.TileVariant{{Tile: TileWater, Chance: 1}}},
			{Name: "beach", Type: terrain.Beach, MinHeight: 0.42, Tiles: []terrain.TileVariant{{Tile: TileSand, Chance: 1}}},
			{Name: "swamp", Type: terrain.Swamp, MinHeight: 0.45, MinMoisture: 0.6, MinHeat: 0.4, Tiles: []terrain.TileVariant{{Tile: TileMossyStone, Chance: 0.6}, {Tile: TileDirt, Chance: 0.4}}},
			{Name: "grassland", Type: terrain.Grassland, MinHeight: 0.47, MinMoisture: 0.3, MinHeat: 0.3, Tiles: []terrain.TileVariant{{Tile: TileGrass, Chance: 0.8}, {Tile: TileFlower, Chance: 0.2}}},
			{Name: "forest", Type: terrain.Forest, MinHeight: 0.47, MinMoisture: 0.5, MinHeat: 0.35, Tiles: []terrain.TileVariant{{Tile: TileLeaves, Chance: 1}}},
			{Name: "desert", Type: terrain.Desert, MinHeight: 0.47, MinHeat: 0.6, Tiles: []terrain.TileVariant{{Tile: TileSand, Chance: 1}}},
			{Name: "tundra", Type: terrain.Tundra, MinHeight: 0.47, MinMoisture: 0.2, Tiles: []terrain.TileVariant{{Tile: TileSnowGrass, Chance: 1}}},
			{Name: "mountain", Type: terrain.Mountain, MinHeight: 0.6, Tiles: []terrain.TileVariant{{Tile: TileStone, Chance: 0.7}, {Tile: TileDarkStone, Chance: 0.3}}},
			{Name: "snow", Type: terrain.Snow, MinHeight: 0.66, Tiles: []terrain.TileVariant{{Tile: TileSnowGrass, Chance: 1}}},
		},
		MaxRivers: 8,
		Noise:     terrain.NoisePerlin,
	}
}

// Decode reads JSON settings from r. Keys missing from the document keep
// their default values; list keys replace the default list as a whole.
func Decode(r io.Reader) (terrain.Settings, error) {
	def := Default()
	s := def
	s.HeightWaves, s.MoistureWaves, s.TemperatureWaves, s.Biomes = nil, nil, nil, nil

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return terrain.Settings{}, fmt.Errorf("decode settings: %w", err)
	}

	if s.HeightWaves == nil {
		s.HeightWaves = def.HeightWaves
	}
	if s.MoistureWaves == nil {
		s.MoistureWaves = def.MoistureWaves
	}
	if s.TemperatureWaves == nil {
		s.TemperatureWaves = def.TemperatureWaves
	}
	if s.Biomes == nil {
		s.Biomes = def.Biomes
	}
	if err := s.Validate(); err != nil {
		return terrain.Settings{}, err
	}
	return s, nil
}

// Load reads a settings file from disk.
func Load(path string) (terrain.Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return terrain.Settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return terrain.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadFS reads a settings file from fsys, e.g. the embedded asset tree.
func LoadFS(fsys fs.FS, path string) (terrain.Settings, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return terrain.Settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return terrain.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
