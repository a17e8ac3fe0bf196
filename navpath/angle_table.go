package navpath

// Well-known angle-table entry names.
const (
	RotationAngle      = "rotation"
	PathDirectionAngle = "path_direction"
	GoalDirectionAngle = "goal_direction"

	forwardOffsetWaypoints = 20
)

// AngleTable maps a named angular reference to radians. The three
// well-known names are RotationAngle (current heading), PathDirectionAngle
// (heading of a look-ahead waypoint on the global path), and
// GoalDirectionAngle (fixed at plan time to the caller's goal heading).
type AngleTable struct {
	angles map[string]float64
}

// NewAngleTable seeds rotation and path_direction at start and
// goal_direction at goal.
func NewAngleTable(start, goal float64) *AngleTable {
	return &AngleTable{angles: map[string]float64{
		RotationAngle:      start,
		PathDirectionAngle: start,
		GoalDirectionAngle: goal,
	}}
}

// Update refreshes rotation from the current pose and, if path is
// non-empty, path_direction from the look-ahead waypoint nearest the
// current pose. goal_direction is left untouched: it is fixed at plan time.
func (t *AngleTable) Update(currentPose Pose, path RobotPath) {
	t.angles[RotationAngle] = currentPose.Theta
	if len(path) == 0 {
		return
	}
	if wp, ok := ForwardOffsetPoint(path, currentPose, forwardOffsetWaypoints); ok {
		t.angles[PathDirectionAngle] = wp.Theta
	}
}

// Angle returns the named angle, or false if absent.
func (t *AngleTable) Angle(name string) (float64, bool) {
	v, ok := t.angles[name]
	return v, ok
}

// Snapshot returns a copy of the underlying name->angle map.
func (t *AngleTable) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(t.angles))
	for k, v := range t.angles {
		out[k] = v
	}
	return out
}
