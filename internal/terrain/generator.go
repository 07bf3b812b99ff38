package terrain

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Painter receives every tile assignment: once per cell during terrain
// generation and again for each cell a river converts to water.
type Painter interface {
	Paint(x, y int, tile TileID)
}

// Framer is an optional camera hint sent after a pass completes.
type Framer interface {
	Frame(width, height int, cellSize float64)
}

// Result is the outcome of one generation pass.
type Result struct {
	Grid      *Grid
	Seed      int64
	RiverSeed int64
	Rivers    []River
}

// Generator runs generation passes for one Settings value. It is not safe
// for concurrent use.
type Generator struct {
	settings Settings
	painter  Painter
	framer   Framer
	log      *slog.Logger
	rng      *rand.Rand
	now      func() time.Time
}

type Option func(*Generator)

func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) { g.log = log }
}

func WithFramer(f Framer) Option {
	return func(g *Generator) { g.framer = f }
}

// New validates settings and returns a generator. painter may be nil.
func New(settings Settings, painter Painter, opts ...Option) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	g := &Generator{
		settings: settings,
		painter:  painter,
		rng:      rand.New(rand.NewSource(0)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = slog.New(slog.DiscardHandler)
	}
	return g, nil
}

func (g *Generator) Settings() Settings {
	return g.settings
}

// Generate builds a fresh grid, paints it, then carves rivers on top.
func (g *Generator) Generate() (*Result, error) {
	s := g.settings

	seed := s.Seed
	if seed == 0 {
		seed = g.now().UnixNano()
	}
	g.rng.Seed(seed)
	g.log.Info("generating terrain", "width", s.Width, "height", s.Height, "noise", s.Noise, "seed", seed)

	src, err := NewNoise(s.Noise, seed)
	if err != nil {
		return nil, err
	}
	heightMap, err := NoiseField(s.Width, s.Height, s.Scale, s.Offset, s.HeightWaves, src)
	if err != nil {
		return nil, fmt.Errorf("height field: %w", err)
	}
	moistureMap, err := NoiseField(s.Width, s.Height, s.Scale, s.Offset, s.MoistureWaves, src)
	if err != nil {
		return nil, fmt.Errorf("moisture field: %w", err)
	}
	heatMap, err := NoiseField(s.Width, s.Height, s.Scale, s.Offset, s.TemperatureWaves, src)
	if err != nil {
		return nil, fmt.Errorf("temperature field: %w", err)
	}

	grid := NewGrid(s.Width, s.Height)
	grid.Each(func(c *Cell) {
		b := &s.Biomes[Classify(heightMap[c.X][c.Y], moistureMap[c.X][c.Y], heatMap[c.X][c.Y], s.Biomes)]
		c.Biome = b.Type
		c.Tile = b.PickTile(g.rng)
		c.Height = b.CellHeight(g.rng)
		if g.painter != nil {
			g.painter.Paint(c.X, c.Y, c.Tile)
		}
	})

	riverSeed := s.RiverSeed
	if riverSeed == 0 {
		riverSeed = g.now().UnixNano()
	}
	carver := NewRiverCarver(grid, s.Biomes, s.Scale, g.rng, g.painter, g.log)
	carver.Reseed(riverSeed)
	rivers := carver.GenerateRivers(s.MaxRivers)

	g.log.Info("terrain generated", "water", grid.Count(Water), "rivers", len(rivers), "river_seed", riverSeed)

	if g.framer != nil {
		g.framer.Frame(s.Width, s.Height, s.CellSize)
	}

	return &Result{
		Grid:      grid,
		Seed:      seed,
		RiverSeed: riverSeed,
		Rivers:    rivers,
	}, nil
}
