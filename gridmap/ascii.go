package gridmap

import (
	"strconv"
	"strings"
)

// DumpASCII renders a GridMap[uint8] as a single-character-per-cell grid,
// scaling Value cells by scale and clamping the displayed digit to 9. Useful
// for debug logging and tests; mirrors the reference implementation's
// show_ascii_map helper.
func DumpASCII(m *GridMap[uint8], scale float64) string {
	var b strings.Builder
	for y := uint(0); y < m.Height(); y++ {
		for x := uint(0); x < m.Width(); x++ {
			cell, _ := m.Cell(Grid{X: x, Y: y})
			b.WriteString(asciiGlyph(cell, scale))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func asciiGlyph(cell Cell[uint8], scale float64) string {
	switch {
	case cell.IsObstacle():
		return "x"
	case cell.IsUninitialized():
		return "u"
	case cell.IsUnknown():
		return "?"
	default:
		v, _ := cell.Value()
		scaled := int(float64(v) * scale)
		if scaled > 9 {
			scaled = 9
		}
		if scaled < 0 {
			scaled = 0
		}
		return strconv.Itoa(scaled)
	}
}
