package navigator_test

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/nav/navigator"
	"go.viam.com/nav/navpath"
)

func TestSetLocalPathFromGlobalPathFiltersToWindow(t *testing.T) {
	nav := navigator.NewNavigator()
	nav.CurrentPose = navpath.NewPose(0, 0, 0)
	nav.LocalArea = [2]float64{1, 1}
	nav.NavPath.SetGlobalPath(navpath.RobotPath{
		navpath.NewPose(0.5, 0.5, 0),
		navpath.NewPose(5, 5, 0),
		navpath.NewPose(-0.9, 0.2, 0),
	})

	nav.SetLocalPathFromGlobalPath()

	test.That(t, len(nav.NavPath.Local), test.ShouldEqual, 2)
}

func TestStatusTerminal(t *testing.T) {
	test.That(t, navigator.StateArrived.Terminal(), test.ShouldBeTrue)
	test.That(t, navigator.StateFailed.Terminal(), test.ShouldBeTrue)
	test.That(t, navigator.StateAborted.Terminal(), test.ShouldBeTrue)
	test.That(t, navigator.StateExecuting.Terminal(), test.ShouldBeFalse)
}
