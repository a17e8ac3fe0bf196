package navpath

// NearestPathPoint linear-scans path for the waypoint closest to target,
// returning its index and the waypoint itself. Ties are broken by lowest
// index (the scan only replaces the best-so-far on a strictly smaller
// distance). Returns false on an empty path.
func NearestPathPoint(path RobotPath, target Pose) (int, Pose, bool) {
	if len(path) == 0 {
		return 0, Pose{}, false
	}
	bestIdx := 0
	bestDist := target.DistanceTo(path[0])
	for i := 1; i < len(path); i++ {
		d := target.DistanceTo(path[i])
		if d < bestDist {
			bestIdx = i
			bestDist = d
		}
	}
	return bestIdx, path[bestIdx], true
}

// ForwardOffsetPoint returns the waypoint offset waypoints ahead of the nearest
// point to pose, clamped to the last waypoint. Used for both the
// local-goal cost layer (offset 20) and path_direction angle updates.
func ForwardOffsetPoint(path RobotPath, pose Pose, offset int) (Pose, bool) {
	nearest, _, ok := NearestPathPoint(path, pose)
	if !ok {
		return Pose{}, false
	}
	idx := nearest + offset
	if idx > len(path)-1 {
		idx = len(path) - 1
	}
	return path[idx], true
}
