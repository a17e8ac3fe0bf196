package navpath

import (
	"math"

	"go.viam.com/nav/gridmap"
)

// LinearInterpolate inserts equally spaced waypoints along path so that no
// two consecutive waypoints are more than extendLength apart. Each inserted
// waypoint's theta is the direction of the segment that produced it
// (atan2(dy, dx)); the final waypoint inherits the previous segment's
// direction, ready to be overwritten by AddTargetPose.
func LinearInterpolate(path []gridmap.Position, extendLength float64) RobotPath {
	if len(path) < 2 {
		out := make(RobotPath, len(path))
		for i, p := range path {
			out[i] = NewPose(p.X, p.Y, 0)
		}
		return out
	}

	var interpolated RobotPath
	for i := 0; i < len(path)-1; i++ {
		p0, p1 := path[i], path[i+1]
		dx := p1.X - p0.X
		dy := p1.Y - p0.Y
		dist := math.Hypot(dx, dy)
		direction := math.Atan2(dy, dx)
		steps := int(math.Ceil(dist / extendLength))
		if steps > 0 {
			unitX := dx / float64(steps)
			unitY := dy / float64(steps)
			for j := 0; j < steps; j++ {
				interpolated = append(interpolated, NewPose(
					p0.X+unitX*float64(j),
					p0.Y+unitY*float64(j),
					direction,
				))
			}
		} else {
			interpolated = append(interpolated, NewPose(p0.X, p0.Y, direction))
		}
	}

	lastTheta := interpolated[len(interpolated)-1].Theta
	last := path[len(path)-1]
	interpolated = append(interpolated, NewPose(last.X, last.Y, lastTheta))
	return interpolated
}

// AddTargetPose overwrites the final waypoint of path with targetPose,
// or appends it if path is empty.
func AddTargetPose(path RobotPath, targetPose Pose) RobotPath {
	if len(path) == 0 {
		return RobotPath{targetPose}
	}
	out := make(RobotPath, len(path))
	copy(out, path)
	out[len(out)-1] = targetPose
	return out
}
