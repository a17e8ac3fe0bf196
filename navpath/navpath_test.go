package navpath_test

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/nav/gridmap"
	"go.viam.com/nav/navpath"
)

func TestNearestPathPointBreaksTiesByLowestIndex(t *testing.T) {
	path := navpath.RobotPath{
		navpath.NewPose(0, 1, 0),
		navpath.NewPose(1, 0, 0),
		navpath.NewPose(-1, 0, 0),
	}
	idx, wp, ok := navpath.NearestPathPoint(path, navpath.NewPose(0, 0, 0))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, 0)
	test.That(t, wp, test.ShouldResemble, path[0])
}

func TestNearestPathPointEmpty(t *testing.T) {
	_, _, ok := navpath.NearestPathPoint(nil, navpath.NewPose(0, 0, 0))
	test.That(t, ok, test.ShouldBeFalse)
}

func TestForwardOffsetPointClampsToLastWaypoint(t *testing.T) {
	path := navpath.RobotPath{
		navpath.NewPose(0, 0, 0),
		navpath.NewPose(1, 0, 0),
		navpath.NewPose(2, 0, 0),
	}
	wp, ok := navpath.ForwardOffsetPoint(path, navpath.NewPose(0, 0, 0), 20)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, wp, test.ShouldResemble, path[2])
}

func TestLinearInterpolateSpacing(t *testing.T) {
	path := []gridmap.Position{{X: 0, Y: 0}, {X: 1, Y: 0}}
	result := navpath.LinearInterpolate(path, 0.25)
	test.That(t, len(result) > 2, test.ShouldBeTrue)
	for i := 0; i < len(result)-1; i++ {
		d := result[i].DistanceTo(result[i+1])
		test.That(t, d <= 0.25+1e-9, test.ShouldBeTrue)
	}
	last := result[len(result)-1]
	test.That(t, last.X, test.ShouldAlmostEqual, 1.0)
}

func TestAddTargetPoseOverwritesFinalWaypoint(t *testing.T) {
	path := navpath.RobotPath{navpath.NewPose(0, 0, 0), navpath.NewPose(1, 0, 0)}
	target := navpath.NewPose(5, 5, math.Pi/2)
	result := navpath.AddTargetPose(path, target)
	test.That(t, result[len(result)-1], test.ShouldResemble, target)
	test.That(t, result[0], test.ShouldResemble, path[0])
}

func TestAngleTableUpdate(t *testing.T) {
	table := navpath.NewAngleTable(0, math.Pi)
	path := navpath.RobotPath{navpath.NewPose(0, 0, 0.1), navpath.NewPose(1, 0, 0.2)}
	table.Update(navpath.NewPose(0, 0, 1.0), path)

	rotation, ok := table.Angle(navpath.RotationAngle)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, rotation, test.ShouldAlmostEqual, 1.0)

	goalDir, ok := table.Angle(navpath.GoalDirectionAngle)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, goalDir, test.ShouldAlmostEqual, math.Pi)
}

func TestAngleSpaceAddAndLookup(t *testing.T) {
	space := navpath.NewAngleSpace(nil)
	_, ok := space.Space("heading_error")
	test.That(t, ok, test.ShouldBeFalse)

	space.AddSpace("heading_error", 0.5)
	v, ok := space.Space("heading_error")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, v, test.ShouldAlmostEqual, 0.5)

	space.AddSpace("heading_error", 1.5)
	v, ok = space.Space("heading_error")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, v, test.ShouldAlmostEqual, 1.5)
}

func TestAngleSpaceFromExistingMap(t *testing.T) {
	space := navpath.NewAngleSpace(map[string]float64{navpath.RotationAngle: 0.25})
	v, ok := space.Space(navpath.RotationAngle)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, v, test.ShouldAlmostEqual, 0.25)
}
