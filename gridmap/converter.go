package gridmap

import "math"

// Converter is the immutable (resolution, min, max, size) quadruple used to
// translate between world-frame Position and grid-frame Grid coordinates.
// A Converter never mutates after construction; multiple GridMap layers
// sharing the same extent share the same Converter.
type Converter struct {
	resolution float64
	min, max   Position
	size       Size
}

// NewConverter builds a Converter. Panics if max is not strictly greater
// than min componentwise or resolution is not positive: both are violated
// internal invariants, not recoverable user errors, matching the teacher's
// convention of asserting at construction (see openrr-nav GridMap::new).
func NewConverter(min, max Position, resolution float64) Converter {
	if resolution <= 0 {
		panic("gridmap: resolution must be positive")
	}
	if !(max.X > min.X && max.Y > min.Y) {
		panic("gridmap: max must be strictly greater than min componentwise")
	}
	width := uint(math.Floor((max.X - min.X) / resolution))
	height := uint(math.Floor((max.Y - min.Y) / resolution))
	return Converter{
		resolution: resolution,
		min:        min,
		max:        max,
		size:       NewSize(width, height),
	}
}

// Resolution returns the cell edge length in metres.
func (c Converter) Resolution() float64 { return c.resolution }

// Min returns the world-frame minimum corner.
func (c Converter) Min() Position { return c.min }

// Max returns the world-frame maximum corner.
func (c Converter) Max() Position { return c.max }

// Size returns the grid extent in cells.
func (c Converter) Size() Size { return c.size }

// ToGrid floors (p - min)/r into a Grid coordinate. Returns false when p
// falls below min on either axis or the computed cell exceeds size — never
// panics on out-of-range input.
func (c Converter) ToGrid(p Position) (Grid, bool) {
	if p.X < c.min.X || p.Y < c.min.Y {
		return Grid{}, false
	}
	gx := uint(math.Floor((p.X - c.min.X) / c.resolution))
	gy := uint(math.Floor((p.Y - c.min.Y) / c.resolution))
	if gx >= c.size.Width || gy >= c.size.Height {
		return Grid{}, false
	}
	return Grid{X: gx, Y: gy}, true
}

// ToIndex computes W*gy + gx, returning false when g falls outside size.
func (c Converter) ToIndex(g Grid) (uint, bool) {
	if g.X >= c.size.Width || g.Y >= c.size.Height {
		return 0, false
	}
	return c.size.Width*g.Y + g.X, true
}

// GridFromIndex is the inverse of ToIndex: gy = index/W, gx = index mod W.
// Returns false when index falls outside the cell count.
func (c Converter) GridFromIndex(index uint) (Grid, bool) {
	if index >= c.size.Len() {
		return Grid{}, false
	}
	return Grid{X: index % c.size.Width, Y: index / c.size.Width}, true
}
