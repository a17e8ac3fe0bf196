package gridmap

// OccupancyGrid is the wire-shaped occupancy grid message accepted from
// external robotics middleware: a flat row-major cost array plus the
// geometry needed to place it in the world frame.
type OccupancyGrid struct {
	Width, Height uint
	Resolution    float64
	OriginX       float64
	OriginY       float64
	OriginTheta   float64
	// Data is row-major, length Width*Height. Values follow the standard
	// occupancy-grid-message convention: -1 unknown, 0-100 occupancy
	// probability percent, anything else also treated as unknown.
	Data []int8
}

// ImportOccupancyGrid converts an OccupancyGrid message into a GridMap[uint8]
// spanning (origin, origin+(width*r, height*r)). Per cell: -1 becomes
// Unknown; 0..=100 becomes Value(i); any other value becomes Unknown.
func ImportOccupancyGrid(og OccupancyGrid) *GridMap[uint8] {
	min := NewPosition(og.OriginX, og.OriginY)
	max := NewPosition(
		og.OriginX+float64(og.Width)*og.Resolution,
		og.OriginY+float64(og.Height)*og.Resolution,
	)
	m := New[uint8](min, max, og.Resolution)
	for y := uint(0); y < og.Height; y++ {
		for x := uint(0); x < og.Width; x++ {
			idx := y*og.Width + x
			if idx >= uint(len(og.Data)) {
				continue
			}
			raw := og.Data[idx]
			cell := cellFromOccupancyValue(raw)
			m.SetCell(Grid{X: x, Y: y}, cell)
		}
	}
	return m
}

func cellFromOccupancyValue(raw int8) Cell[uint8] {
	if raw >= 0 && raw <= 100 {
		return ValueCell(uint8(raw))
	}
	return UnknownCell[uint8]()
}
