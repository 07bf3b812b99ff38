package config

import (
	"flag"

	"Hexmap/internal/terrain"
)

// Bind registers the settings override flags on fs, writing into s.
func Bind(fs *flag.FlagSet, s *terrain.Settings) {
	fs.IntVar(&s.Width, "width", s.Width, "map width in cells")
	fs.IntVar(&s.Height, "height", s.Height, "map height in cells")
	fs.Float64Var(&s.Scale, "scale", s.Scale, "noise sample scale")
	fs.Float64Var(&s.CellSize, "cell", s.CellSize, "cell size in pixels")
	fs.IntVar(&s.MaxRivers, "rivers", s.MaxRivers, "maximum rivers per pass")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "terrain seed (0 = time based)")
	fs.Int64Var(&s.RiverSeed, "river-seed", s.RiverSeed, "river seed (0 = time based)")
	fs.StringVar((*string)(&s.Noise), "noise", string(s.Noise), "noise backend: perlin or simplex")
}

// Explicit returns the names of the flags set on the command line.
func Explicit(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// Merge applies file-loaded settings into cfg, but only for fields whose
// flags were NOT explicitly given on the command line.
func Merge(cfg *terrain.Settings, fromFile terrain.Settings, explicitFlags map[string]bool) {
	flagged := *cfg
	*cfg = fromFile

	if explicitFlags["width"] {
		cfg.Width = flagged.Width
	}
	if explicitFlags["height"] {
		cfg.Height = flagged.Height
	}
	if explicitFlags["scale"] {
		cfg.Scale = flagged.Scale
	}
	if explicitFlags["cell"] {
		cfg.CellSize = flagged.CellSize
	}
	if explicitFlags["rivers"] {
		cfg.MaxRivers = flagged.MaxRivers
	}
	if explicitFlags["seed"] {
		cfg.Seed = flagged.Seed
	}
	if explicitFlags["river-seed"] {
		cfg.RiverSeed = flagged.RiverSeed
	}
	if explicitFlags["noise"] {
		cfg.Noise = flagged.Noise
	}
}
