package globalplan

import (
	"math/rand"

	"go.viam.com/nav/gridmap"
)

// shortcutSmooth runs SmoothIters shortcut attempts against path: each
// attempt picks two random indices and replaces the sub-path between them
// with a straight segment iff that segment is entirely free.
func shortcutSmooth(freeSpace FreeSpaceFunc, path []gridmap.Position, rng *rand.Rand) []gridmap.Position {
	if len(path) < 3 {
		return path
	}
	current := make([]gridmap.Position, len(path))
	copy(current, path)

	for i := 0; i < SmoothIters; i++ {
		if len(current) < 3 {
			break
		}
		a := rng.Intn(len(current))
		b := rng.Intn(len(current))
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if b-a < 2 {
			continue
		}
		if !segmentFree(freeSpace, current[a], current[b]) {
			continue
		}
		shortened := make([]gridmap.Position, 0, len(current)-(b-a)+1)
		shortened = append(shortened, current[:a+1]...)
		shortened = append(shortened, current[b:]...)
		current = shortened
	}
	return current
}
