package gridmap

// Position is a world-frame 2D point in metres.
type Position struct {
	X, Y float64
}

// NewPosition builds a Position.
func NewPosition(x, y float64) Position { return Position{X: x, Y: y} }

// Less implements the partial order from the data model: a < b iff both
// components are strictly less. Positions with mixed component ordering are
// incomparable and Less returns false both ways.
func (p Position) Less(other Position) bool {
	return p.X < other.X && p.Y < other.Y
}

// Grid is an integer cell coordinate (gx, gy).
type Grid struct {
	X, Y uint
}

// NewGrid builds a Grid.
func NewGrid(x, y uint) Grid { return Grid{X: x, Y: y} }

// Neighbors4 returns the 4-connected neighbours, excluding any coordinate
// that would underflow below zero. The asymmetric order (+y, +x, -x, -y)
// matches the source kernel and has no bearing on correctness.
func (g Grid) Neighbors4() []Grid {
	neighbors := make([]Grid, 0, 4)
	neighbors = append(neighbors, Grid{g.X, g.Y + 1}, Grid{g.X + 1, g.Y})
	if g.X != 0 {
		neighbors = append(neighbors, Grid{g.X - 1, g.Y})
	}
	if g.Y != 0 {
		neighbors = append(neighbors, Grid{g.X, g.Y - 1})
	}
	return neighbors
}

// Size is a grid's extent in cells.
type Size struct {
	Width, Height uint
}

// NewSize builds a Size.
func NewSize(width, height uint) Size { return Size{Width: width, Height: height} }

// Len is the cell count W*H.
func (s Size) Len() uint { return s.Width * s.Height }

// IsEmpty reports whether the size has zero cells.
func (s Size) IsEmpty() bool { return s.Len() == 0 }
