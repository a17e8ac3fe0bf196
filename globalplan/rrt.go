// Package globalplan implements the global route planner: a bidirectional
// randomized-tree connect over a free-space predicate, shortcut smoothing,
// and linear interpolation into an orientation-annotated route.
package globalplan

import (
	"math"
	"math/rand"

	"go.viam.com/nav/gridmap"
	"go.viam.com/nav/navpath"
)

// Tunables from spec.md §4.4.
const (
	// ExtendLength is the maximum step length of a single tree extension,
	// matching openrr-nav's global_plan.rs EXTEND_LENGTH.
	ExtendLength = 0.05
	// MaxIter bounds the number of sampling iterations before the planner
	// gives up and reports failure. Each iteration makes one extension toward
	// a random sample and then a connect attempt that may extend many times,
	// so the total number of extensions is not capped by MaxIter.
	MaxIter = 4000
	// SmoothIters is the number of shortcut-smoothing attempts run on the
	// raw connected path.
	SmoothIters = 1000
	// collisionCheckStep is the spacing between interpolated test points
	// used to decide whether a straight segment is entirely free.
	collisionCheckStep = 0.02
)

// FreeSpaceFunc reports whether a world-frame position is free to occupy.
// It must return false for any position outside the planner's AABB.
type FreeSpaceFunc func(gridmap.Position) bool

// FreeSpaceFromMap builds a FreeSpaceFunc from a static occupancy map: a
// position is free iff it is in-range and its cell is not tagged Obstacle.
func FreeSpaceFromMap(m *gridmap.GridMap[uint8]) FreeSpaceFunc {
	return func(p gridmap.Position) bool {
		cell, ok := m.CellByPosition(p)
		if !ok {
			return false
		}
		return !cell.IsObstacle()
	}
}

// treeNode is a single vertex of one of the two growing trees. parent is
// the index of its predecessor within the same tree's node slice, or -1
// for the root.
type treeNode struct {
	pos    gridmap.Position
	parent int
}

type tree struct {
	nodes []treeNode
}

func newTree(root gridmap.Position) *tree {
	return &tree{nodes: []treeNode{{pos: root, parent: -1}}}
}

func (t *tree) nearest(p gridmap.Position) int {
	best := 0
	bestDist := distance(t.nodes[0].pos, p)
	for i := 1; i < len(t.nodes); i++ {
		d := distance(t.nodes[i].pos, p)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func (t *tree) add(p gridmap.Position, parent int) int {
	t.nodes = append(t.nodes, treeNode{pos: p, parent: parent})
	return len(t.nodes) - 1
}

func (t *tree) pathTo(idx int) []gridmap.Position {
	var out []gridmap.Position
	for idx != -1 {
		out = append(out, t.nodes[idx].pos)
		idx = t.nodes[idx].parent
	}
	reverse(out)
	return out
}

func distance(a, b gridmap.Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func reverse(ps []gridmap.Position) {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
}

// segmentFree reports whether every interpolated test point between a and
// b, inclusive of b, satisfies freeSpace.
func segmentFree(freeSpace FreeSpaceFunc, a, b gridmap.Position) bool {
	dist := distance(a, b)
	if dist == 0 {
		return freeSpace(a)
	}
	steps := int(math.Ceil(dist / collisionCheckStep))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := gridmap.NewPosition(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
		if !freeSpace(p) {
			return false
		}
	}
	return true
}

// extendResult classifies the outcome of a single tree-extension step.
type extendResult int

const (
	trapped extendResult = iota
	advanced
	reached
)

// extend grows t by at most ExtendLength toward target, adding the new
// vertex iff the connecting segment is free. Reports reached when target
// lay within ExtendLength of the nearest vertex, so the new vertex lands on
// target itself.
func extend(freeSpace FreeSpaceFunc, t *tree, target gridmap.Position) (extendResult, int) {
	nearestIdx := t.nearest(target)
	nearest := t.nodes[nearestIdx].pos
	dist := distance(nearest, target)
	if dist == 0 {
		return trapped, -1
	}

	step := math.Min(ExtendLength, dist)
	ratio := step / dist
	newPos := gridmap.NewPosition(
		nearest.X+(target.X-nearest.X)*ratio,
		nearest.Y+(target.Y-nearest.Y)*ratio,
	)
	if !segmentFree(freeSpace, nearest, newPos) {
		return trapped, -1
	}
	newIdx := t.add(newPos, nearestIdx)
	if step >= dist {
		return reached, newIdx
	}
	return advanced, newIdx
}

// connect repeatedly extends t toward target until it is trapped or
// reaches target, returning the final status and the index of the vertex
// nearest target that was actually added (valid when status != trapped).
func connect(freeSpace FreeSpaceFunc, t *tree, target gridmap.Position) (extendResult, int) {
	var last int
	for {
		status, idx := extend(freeSpace, t, target)
		if status == trapped {
			return trapped, -1
		}
		last = idx
		if status == reached {
			return reached, last
		}
	}
}

// Plan grows two randomized trees rooted at start.xy and goal.xy within
// [min, max], connecting them under freeSpace, then shortcut-smooths and
// linearly interpolates the result into an orientation-annotated route
// whose final waypoint is snapped to goal. Returns false if no connection
// is found within MaxIter sampling iterations.
func Plan(freeSpace FreeSpaceFunc, min, max gridmap.Position, start, goal navpath.Pose, rng *rand.Rand) (navpath.RobotPath, bool) {
	startPos := gridmap.NewPosition(start.X, start.Y)
	goalPos := gridmap.NewPosition(goal.X, goal.Y)

	if !freeSpace(startPos) || !freeSpace(goalPos) {
		return nil, false
	}

	treeA := newTree(startPos)
	treeB := newTree(goalPos)
	aIsStart := true

	for i := 0; i < MaxIter; i++ {
		sample := gridmap.NewPosition(
			min.X+rng.Float64()*(max.X-min.X),
			min.Y+rng.Float64()*(max.Y-min.Y),
		)

		status, newIdx := extend(freeSpace, treeA, sample)
		if status == trapped {
			treeA, treeB = treeB, treeA
			aIsStart = !aIsStart
			continue
		}

		connectStatus, connectIdx := connect(freeSpace, treeB, treeA.nodes[newIdx].pos)
		if connectStatus == reached {
			startHalf := treeA.pathTo(newIdx)
			goalHalf := treeB.pathTo(connectIdx)
			reverse(goalHalf)
			if !aIsStart {
				startHalf, goalHalf = goalHalf, startHalf
			}
			raw := append(startHalf, goalHalf...)
			return finishPath(freeSpace, raw, start, goal, rng), true
		}

		treeA, treeB = treeB, treeA
		aIsStart = !aIsStart
	}
	return nil, false
}

func finishPath(freeSpace FreeSpaceFunc, raw []gridmap.Position, start, goal navpath.Pose, rng *rand.Rand) navpath.RobotPath {
	smoothed := shortcutSmooth(freeSpace, raw, rng)
	path := navpath.LinearInterpolate(smoothed, ExtendLength)
	if len(path) > 0 {
		path[0] = navpath.NewPose(start.X, start.Y, path[0].Theta)
	}
	return navpath.AddTargetPose(path, goal)
}
