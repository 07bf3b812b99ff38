package terrain

// Coord is an offset hex coordinate. y grows northward.
type Coord struct {
	X, Y int
}

// Cell is one generated map tile.
type Cell struct {
	Coord
	Biome  BiomeType
	Height float64
	Tile   TileID
}

// Grid is a dense width x height array of cells stored row by row.
type Grid struct {
	Width, Height int
	cells         []Cell
}

func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x].Coord = Coord{X: x, Y: y}
		}
	}
	return g
}

func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the cell at c, or nil when c is outside the grid.
func (g *Grid) At(c Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[c.Y*g.Width+c.X]
}

// Count returns how many cells carry biome b.
func (g *Grid) Count(b BiomeType) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Biome == b {
			n++
		}
	}
	return n
}

// Each visits cells with x outer and y inner, the painting order.
func (g *Grid) Each(fn func(c *Cell)) {
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			fn(&g.cells[y*g.Width+x])
		}
	}
}
