package terrain

import (
	"log/slog"
	"math"
	"math/rand"
)

// River is one carved river: the border-water cell it started from and the
// cells converted to water, in walk order.
type River struct {
	Seed  Coord
	Cells []Coord
}

// RiverCarver grows rivers over a generated grid. Claimed cells are shared
// by every river of a batch so rivers never merge or cross.
type RiverCarver struct {
	grid    *Grid
	painter Painter
	log     *slog.Logger
	rng     *rand.Rand

	water   *Biome
	branch  int
	claimed map[Coord]struct{}
}

// NewRiverCarver prepares a carver for grid that draws from rng. scale sets
// the branching bound round(4/scale); the first Water biome in biomes
// supplies river tiles.
func NewRiverCarver(grid *Grid, biomes []Biome, scale float64, rng *rand.Rand, painter Painter, log *slog.Logger) *RiverCarver {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	rc := &RiverCarver{
		grid:    grid,
		painter: painter,
		log:     log,
		rng:     rng,
		claimed: make(map[Coord]struct{}),
	}
	if scale > 0 {
		rc.branch = int(math.Round(4 / scale))
	}
	for i := range biomes {
		if biomes[i].Type == Water {
			rc.water = &biomes[i]
			break
		}
	}
	return rc
}

// Reseed restarts the carver's random stream.
func (rc *RiverCarver) Reseed(seed int64) {
	rc.rng.Seed(seed)
}

// Claimed reports whether some river of the batch already owns c.
func (rc *RiverCarver) Claimed(c Coord) bool {
	_, ok := rc.claimed[c]
	return ok
}

// BorderWater lists water cells with fewer than four water neighbors.
func (rc *RiverCarver) BorderWater() []Coord {
	var out []Coord
	rc.grid.Each(func(c *Cell) {
		if c.Biome != Water {
			return
		}
		wet := 0
		for _, n := range Neighbors(c.Coord, rc.grid.Width, rc.grid.Height) {
			if rc.grid.At(n).Biome == Water {
				wet++
			}
		}
		if wet < 4 {
			out = append(out, c.Coord)
		}
	})
	return out
}

// GenerateRivers carves up to limit rivers. The batch stops early once the
// map has no border water left.
func (rc *RiverCarver) GenerateRivers(limit int) []River {
	var rivers []River
	for i := 0; i < limit; i++ {
		border := rc.BorderWater()
		if len(border) == 0 {
			rc.log.Info("no border water, stopping river batch", "carved", len(rivers), "requested", limit)
			break
		}
		seed := border[rc.rng.Intn(len(border))]
		cells := rc.CarveRiver(seed)
		if len(cells) == 0 {
			rc.log.Debug("river has no room to flow", "index", i, "x", seed.X, "y", seed.Y)
		} else {
			rc.log.Debug("river carved", "index", i, "x", seed.X, "y", seed.Y, "cells", len(cells))
		}
		rivers = append(rivers, River{Seed: seed, Cells: cells})
	}
	return rivers
}

// CarveRiver walks from start toward the highest jittered neighbor until
// it runs out of candidates or hits a mountain, then converts the marked
// cells to water and paints them.
func (rc *RiverCarver) CarveRiver(start Coord) []Coord {
	var path []Coord
	marked := make(map[Coord]struct{})
	mark := func(c Coord) {
		if _, ok := marked[c]; ok {
			return
		}
		marked[c] = struct{}{}
		path = append(path, c)
	}

	current := start
	for {
		candidates := rc.candidates(current, marked)
		if len(candidates) == 0 {
			break
		}

		next := 0
		for i := 1; i < len(candidates); i++ {
			if rc.grid.At(candidates[i]).Height > rc.grid.At(candidates[next]).Height {
				next = i
			}
		}
		flow := candidates[next]
		if rc.grid.At(flow).Biome == Mountain {
			break
		}
		mark(flow)

		others := make([]Coord, 0, len(candidates)-1)
		others = append(others, candidates[:next]...)
		others = append(others, candidates[next+1:]...)
		if rc.branch > 0 {
			n := rc.rng.Intn(rc.branch)
			if len(others) > 0 {
				for j := 0; j < n; j++ {
					mark(others[rc.rng.Intn(len(others))])
				}
			}
		}

		for _, c := range candidates {
			rc.claimed[c] = struct{}{}
		}
		current = flow
	}

	rc.commit(path)
	return path
}

func (rc *RiverCarver) candidates(c Coord, marked map[Coord]struct{}) []Coord {
	nbs := PathNeighbors(c, rc.grid.Width, rc.grid.Height)
	out := nbs[:0]
	for _, n := range nbs {
		if _, ok := marked[n]; ok {
			continue
		}
		if _, ok := rc.claimed[n]; ok {
			continue
		}
		if rc.grid.At(n).Biome == Water {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (rc *RiverCarver) commit(path []Coord) {
	for _, c := range path {
		cell := rc.grid.At(c)
		cell.Biome = Water
		if rc.water != nil {
			cell.Tile = rc.water.PickTile(rc.rng)
		}
		if rc.painter != nil {
			rc.painter.Paint(c.X, c.Y, cell.Tile)
		}
	}
}
