package gridmap

// StepFn advances a distance value from one BFS wave to the next.
type StepFn func(v uint8) uint8

// Saturating is the step function for path/goal distance fields: distance
// rises by one per wave, saturating at 255 instead of wrapping.
func Saturating(v uint8) uint8 {
	if v == 255 {
		return 255
	}
	return v + 1
}

// Decay is the step function for the obstacle inflation field: cost falls
// by 10 per wave away from an obstacle, floored at zero. Combined with a
// seed value of 50 the field truncates to zero after 5 waves.
func Decay(v uint8) uint8 {
	const reduce = 10
	if v < reduce {
		return 0
	}
	return v - reduce
}

// Expand runs the breadth-first distance-transform kernel over m, starting
// from seeds at seedValue and advancing by stepFn on every wave. Expansion
// is iterative (a queue of frontiers), never recursive, so it never
// overflows the stack on large maps.
//
// Precondition: every Grid in seeds is already in-range; seed cells
// themselves are not written by Expand (callers set_value or leave them
// Obstacle-tagged before calling, per the field being synthesized).
// Uninitialized neighbours are claimed in the order visited and never
// revisited; Obstacle, Unknown, and already-claimed cells are skipped.
func Expand(m *GridMap[uint8], seeds []Grid, seedValue uint8, stepFn StepFn) {
	frontier := make([]Grid, len(seeds))
	copy(frontier, seeds)
	currentValue := seedValue

	for {
		if !hasUninitialized(m) || len(frontier) == 0 {
			return
		}
		currentValue = stepFn(currentValue)
		next := make([]Grid, 0, len(frontier))
		for _, g := range frontier {
			if _, ok := m.conv.ToIndex(g); !ok {
				continue
			}
			for _, neighbor := range g.Neighbors4() {
				idx, ok := m.conv.ToIndex(neighbor)
				if !ok {
					continue
				}
				if !m.cells[idx].IsUninitialized() {
					continue
				}
				m.cells[idx] = ValueCell(currentValue)
				next = append(next, neighbor)
			}
		}
		frontier = next
	}
}

func hasUninitialized[T any](m *GridMap[T]) bool {
	for _, c := range m.cells {
		if c.IsUninitialized() {
			return true
		}
	}
	return false
}
