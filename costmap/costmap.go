// Package costmap synthesizes the four named cost fields consumed by the
// DWA local planner: path distance, goal distance, obstacle inflation, and
// a dynamically-windowed local-goal field.
package costmap

import (
	"math"

	"go.viam.com/nav/gridmap"
	"go.viam.com/nav/navpath"
)

// Well-known layer names.
const (
	PathLayer      = "path"
	GoalLayer      = "goal"
	ObstacleLayer  = "obstacle"
	LocalGoalLayer = "local_goal"

	localGoalForwardOffset = 20
	obstacleSeedValue      = 50
)

// CostMaps owns the static occupancy map this tick's fields were derived
// from, plus the four named layers themselves. The same layers are also
// exposed split by scope through a NavigationGridMap: path/goal/obstacle
// are full-map layers that change rarely, while local_goal is rebuilt
// around the current pose every tick it's requested — a distinction the
// flat Layers view used by the DWA planner doesn't carry.
type CostMaps struct {
	originalMap *gridmap.GridMap[uint8]
	layers      *gridmap.LayeredGridMap[uint8]
	nav         *gridmap.NavigationGridMap[uint8]
}

// New builds all four layers from scratch: obstacle from m, path from path,
// goal from goal, and local_goal centred on start.
func New(m *gridmap.GridMap[uint8], path navpath.RobotPath, start, goal navpath.Pose) *CostMaps {
	c := &CostMaps{
		originalMap: m,
		layers:      gridmap.NewLayeredGridMap[uint8](),
		nav: gridmap.NewNavigationGridMap[uint8](
			gridmap.NewLayeredGridMap[uint8](),
			gridmap.NewLayeredGridMap[uint8](),
		),
	}
	c.rebuildObstacle()
	c.rebuildPath(path)
	c.rebuildGoal(goal)
	c.rebuildLocalGoal(path, start)
	return c
}

// OriginalMap returns the static occupancy map the obstacle layer was
// derived from.
func (c *CostMaps) OriginalMap() *gridmap.GridMap[uint8] { return c.originalMap }

// Layers returns the underlying named layer set, flat, as the DWA planner
// consumes it.
func (c *CostMaps) Layers() *gridmap.LayeredGridMap[uint8] { return c.layers }

// NavGrid returns the same layers split by scope: global (path, goal,
// obstacle) and local (local_goal), for debug and CLI surfaces that want
// to report the two separately without re-deriving the split themselves.
func (c *CostMaps) NavGrid() *gridmap.NavigationGridMap[uint8] { return c.nav }

// Layer returns the named layer, or false if absent.
func (c *CostMaps) Layer(name string) (*gridmap.GridMap[uint8], bool) {
	return c.layers.Layer(name)
}

// Update selectively rebuilds layers. A non-nil freshMap replaces the stored
// map and rebuilds the obstacle layer; the path, goal, and local_goal layers
// are rebuilt only when the matching opts flag is set (path and local_goal
// are left as they are when path is empty).
func (c *CostMaps) Update(freshMap *gridmap.GridMap[uint8], path navpath.RobotPath, currentPose navpath.Pose, goal navpath.Pose, opts UpdateOptions) {
	if freshMap != nil {
		c.originalMap = freshMap
		c.rebuildObstacle()
	}
	if opts.RebuildPath {
		c.rebuildPath(path)
	}
	if opts.RebuildGoal {
		c.rebuildGoal(goal)
	}
	if opts.RebuildLocalGoal {
		c.rebuildLocalGoal(path, currentPose)
	}
}

// UpdateOptions tells Update which of the optional-input-driven layers to
// rebuild this tick, since navpath.Pose and navpath.RobotPath have no
// "absent" sentinel of their own.
type UpdateOptions struct {
	RebuildPath      bool
	RebuildGoal      bool
	RebuildLocalGoal bool
}

func (c *CostMaps) rebuildObstacle() {
	distanceMap := c.originalMap.CopyWithoutValue()
	var obstacles []gridmap.Grid
	for y := uint(0); y < distanceMap.Height(); y++ {
		for x := uint(0); x < distanceMap.Width(); x++ {
			g := gridmap.NewGrid(x, y)
			cell, ok := distanceMap.Cell(g)
			if ok && cell.IsObstacle() {
				obstacles = append(obstacles, g)
			}
		}
	}
	if len(obstacles) == 0 {
		// Nothing to inflate from: every free cell carries zero obstacle cost.
		cells := distanceMap.Cells()
		for i := range cells {
			if cells[i].IsUninitialized() {
				cells[i] = gridmap.ValueCell[uint8](0)
			}
		}
	}
	gridmap.Expand(distanceMap, obstacles, obstacleSeedValue, gridmap.Decay)
	c.layers.AddLayer(ObstacleLayer, distanceMap)
	c.nav.UpdateGlobalMap(ObstacleLayer, distanceMap)
}

func (c *CostMaps) rebuildPath(path navpath.RobotPath) {
	if len(path) == 0 {
		return
	}
	pathMap := c.originalMap.CopyWithoutValue()
	var seeds []gridmap.Grid
	for _, wp := range path {
		g, ok := pathMap.ToGrid(gridmap.NewPosition(wp.X, wp.Y))
		if !ok {
			continue
		}
		pathMap.SetValue(g, 0)
		seeds = append(seeds, g)
	}
	gridmap.Expand(pathMap, seeds, 0, gridmap.Saturating)
	c.layers.AddLayer(PathLayer, pathMap)
	c.nav.UpdateGlobalMap(PathLayer, pathMap)
}

func (c *CostMaps) rebuildGoal(goal navpath.Pose) {
	goalMap := c.originalMap.CopyWithoutValue()
	g, ok := goalMap.ToGrid(gridmap.NewPosition(goal.X, goal.Y))
	if !ok {
		return
	}
	goalMap.SetValue(g, 0)
	gridmap.Expand(goalMap, []gridmap.Grid{g}, 0, gridmap.Saturating)
	c.layers.AddLayer(GoalLayer, goalMap)
	c.nav.UpdateGlobalMap(GoalLayer, goalMap)
}

// rebuildLocalGoal picks the waypoint localGoalForwardOffset indices ahead
// of the nearest-to-current-pose waypoint (clamped to the last waypoint),
// builds a fresh local grid centred on the current pose sized to enclose
// it, and runs a goal-distance expansion from the look-ahead waypoint
// inside that local grid. The returned layer therefore carries a different
// converter from the other three.
func (c *CostMaps) rebuildLocalGoal(path navpath.RobotPath, currentPose navpath.Pose) {
	if len(path) == 0 {
		return
	}
	localGoal, ok := navpath.ForwardOffsetPoint(path, currentPose, localGoalForwardOffset)
	if !ok {
		return
	}

	resolution := c.originalMap.Resolution()
	localWidth := math.Max(1, 2*math.Abs(localGoal.X-currentPose.X))
	localHeight := math.Max(1, 2*math.Abs(localGoal.Y-currentPose.Y))

	min := gridmap.NewPosition(
		currentPose.X-localWidth*0.5-resolution,
		currentPose.Y-localHeight*0.5-resolution,
	)
	max := gridmap.NewPosition(
		currentPose.X+localWidth*0.5+resolution,
		currentPose.Y+localHeight*0.5+resolution,
	)

	localMap := gridmap.New[uint8](min, max, resolution)
	g, ok := localMap.ToGrid(gridmap.NewPosition(localGoal.X, localGoal.Y))
	if !ok {
		return
	}
	localMap.SetValue(g, 0)
	gridmap.Expand(localMap, []gridmap.Grid{g}, 0, gridmap.Saturating)
	c.layers.AddLayer(LocalGoalLayer, localMap)
	c.nav.UpdateLocalMap(LocalGoalLayer, localMap)
}
