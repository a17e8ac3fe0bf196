package navigator

import "go.viam.com/nav/navpath"

// Navigator clips the global route to a local bounding box around the
// current pose, independent of the DWA local-goal layer, for display and
// diagnostic surfaces (e.g. a UI panel showing "the part of the route
// relevant right now"). Ported from openrr-nav's
// set_local_path_from_global_path.
type Navigator struct {
	NavPath     *navpath.NavigationRobotPath
	CurrentPose navpath.Pose
	LocalArea   [2]float64
}

// NewNavigator builds a Navigator around an empty route with a default local
// area reaching 1m from the current pose along each axis (a 2m x 2m window).
func NewNavigator() *Navigator {
	return &Navigator{
		NavPath:   navpath.NewNavigationRobotPath(nil, nil),
		LocalArea: [2]float64{1.0, 1.0},
	}
}

// SetLocalPathFromGlobalPath filters the global route down to the
// waypoints that fall within LocalArea of CurrentPose on both axes, and
// stores the result as the local path.
func (n *Navigator) SetLocalPathFromGlobalPath() {
	minX := n.CurrentPose.X - n.LocalArea[0]
	maxX := n.CurrentPose.X + n.LocalArea[0]
	minY := n.CurrentPose.Y - n.LocalArea[1]
	maxY := n.CurrentPose.Y + n.LocalArea[1]

	var local navpath.RobotPath
	for _, wp := range n.NavPath.Global {
		if wp.X > minX && wp.X < maxX && wp.Y > minY && wp.Y < maxY {
			local = append(local, wp)
		}
	}
	n.NavPath.SetLocalPath(local)
}
