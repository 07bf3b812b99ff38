package terrain

// Direction names one of the six hex neighbors.
type Direction int

const (
	West Direction = iota
	NorthWest
	SouthWest
	East
	NorthEast
	SouthEast
	DirectionCount
)

func (d Direction) String() string {
	switch d {
	case West:
		return "W"
	case NorthWest:
		return "NW"
	case SouthWest:
		return "SW"
	case East:
		return "E"
	case NorthEast:
		return "NE"
	case SouthEast:
		return "SE"
	}
	return "?"
}

// Odd rows sit half a cell east of even rows.
var (
	evenRowOffsets = [DirectionCount]Coord{
		West:      {-1, 0},
		NorthWest: {-1, 1},
		SouthWest: {-1, -1},
		East:      {1, 0},
		NorthEast: {0, 1},
		SouthEast: {0, -1},
	}
	oddRowOffsets = [DirectionCount]Coord{
		West:      {-1, 0},
		NorthWest: {0, 1},
		SouthWest: {0, -1},
		East:      {1, 0},
		NorthEast: {1, 1},
		SouthEast: {1, -1},
	}
)

// Offset returns the neighbor of c in direction d. The result may lie
// outside the grid.
func Offset(c Coord, d Direction) Coord {
	table := &evenRowOffsets
	if c.Y%2 != 0 {
		table = &oddRowOffsets
	}
	o := table[d]
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Neighbors returns the in-bounds neighbors of c in direction order,
// skipping any that fall off the grid.
func Neighbors(c Coord, width, height int) []Coord {
	out := make([]Coord, 0, DirectionCount)
	for d := Direction(0); d < DirectionCount; d++ {
		n := Offset(c, d)
		if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
			continue
		}
		out = append(out, n)
	}
	return out
}

// PathNeighbors is the river-growth variant of Neighbors: a single
// out-of-bounds neighbor voids the whole set and nil is returned.
func PathNeighbors(c Coord, width, height int) []Coord {
	out := make([]Coord, 0, DirectionCount)
	for d := Direction(0); d < DirectionCount; d++ {
		n := Offset(c, d)
		if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
			return nil
		}
		out = append(out, n)
	}
	return out
}
