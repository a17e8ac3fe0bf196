package navigator_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.viam.com/test"

	"go.viam.com/nav/capability"
	"go.viam.com/nav/dwaplanner"
	"go.viam.com/nav/gridmap"
	"go.viam.com/nav/logging"
	"go.viam.com/nav/navigator"
	"go.viam.com/nav/navpath"
)

func openMap(t *testing.T) *gridmap.GridMap[uint8] {
	t.Helper()
	return gridmap.New[uint8](gridmap.NewPosition(-1, -1), gridmap.NewPosition(1, 1), 0.05)
}

func testPlanner() *dwaplanner.DwaPlanner {
	limits := dwaplanner.Limits{
		MaxVelocity: dwaplanner.Velocity{X: 0.3, Theta: 1.0},
		MaxAccel:    dwaplanner.Acceleration{X: 0.5, Theta: 2.0},
		MinVelocity: dwaplanner.Velocity{X: -0.1, Theta: -1.0},
		MinAccel:    dwaplanner.Acceleration{X: -0.5, Theta: -2.0},
	}
	return dwaplanner.New(limits, 0.1, 1.0, 3, dwaplanner.DefaultWeights())
}

// fastConfig shortens the controller period so Run's real-clock wait
// between ticks doesn't slow the test suite down.
func fastConfig() navigator.ExecutorConfig {
	cfg := navigator.DefaultExecutorConfig("map")
	cfg.ControllerDt = time.Millisecond
	cfg.MaxTicks = 20
	return cfg
}

func TestRunReachesArrivedWhenAlreadyAtGoal(t *testing.T) {
	goal := navpath.NewPose(0.5, 0.5, 0)
	base := capability.NewFakeBase(true)
	localizer := capability.NewFakePoseSource(goal)
	logger := logging.NewTestLogger(t)

	exec := navigator.New(base, localizer, testPlanner(), fastConfig(), logger, clock.New(), rand.New(rand.NewSource(7)))

	status, err := exec.Run(context.Background(), navpath.NewPose(0, 0, 0), goal, openMap(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, status, test.ShouldEqual, navigator.StateArrived)
	test.That(t, base.LastSent(), test.ShouldResemble, dwaplanner.Velocity{})
	test.That(t, exec.SessionID(), test.ShouldNotResemble, uuid.Nil)
}

func TestDiagnosticAnglesNilBeforeRun(t *testing.T) {
	base := capability.NewFakeBase(true)
	localizer := capability.NewFakePoseSource(navpath.NewPose(0, 0, 0))
	exec := navigator.New(base, localizer, testPlanner(), fastConfig(), logging.NewTestLogger(t), clock.New(), rand.New(rand.NewSource(1)))
	test.That(t, exec.DiagnosticAngles(), test.ShouldBeNil)
}

func TestDiagnosticAnglesReportsHeadingErrorAfterRun(t *testing.T) {
	goal := navpath.NewPose(0.5, 0.5, 0)
	base := capability.NewFakeBase(true)
	localizer := capability.NewFakePoseSource(goal)
	exec := navigator.New(base, localizer, testPlanner(), fastConfig(), logging.NewTestLogger(t), clock.New(), rand.New(rand.NewSource(7)))

	_, err := exec.Run(context.Background(), navpath.NewPose(0, 0, 0), goal, openMap(t))
	test.That(t, err, test.ShouldBeNil)

	angles := exec.DiagnosticAngles()
	test.That(t, angles, test.ShouldNotBeNil)
	_, ok := angles.Space("heading_error")
	test.That(t, ok, test.ShouldBeTrue)
	_, ok = angles.Space(navpath.RotationAngle)
	test.That(t, ok, test.ShouldBeTrue)
}

func TestRunFailsWhenGlobalPlannerCannotConnect(t *testing.T) {
	base := capability.NewFakeBase(true)
	localizer := capability.NewFakePoseSource(navpath.NewPose(0, 0, 0))
	logger := logging.NewTestLogger(t)

	exec := navigator.New(base, localizer, testPlanner(), fastConfig(), logger, clock.New(), rand.New(rand.NewSource(1)))

	blockedMap := gridmap.New[uint8](gridmap.NewPosition(-1, -1), gridmap.NewPosition(1, 1), 0.05)
	for y := uint(0); y < blockedMap.Height(); y++ {
		for x := uint(0); x < blockedMap.Width(); x++ {
			blockedMap.SetObstacle(gridmap.NewGrid(x, y))
		}
	}

	status, err := exec.Run(context.Background(), navpath.NewPose(0, 0, 0), navpath.NewPose(0.9, 0.9, 0), blockedMap)
	test.That(t, status, test.ShouldEqual, navigator.StateFailed)
	test.That(t, err, test.ShouldNotBeNil)
}

// abortingLocalizer requests cooperative cancellation from inside the
// executor's own localization call on its second tick, then keeps
// reporting a pose far from the goal so the test would otherwise run to
// the tick cap.
type abortingLocalizer struct {
	exec  *navigator.Executor
	calls int
}

func (l *abortingLocalizer) CurrentPose(ctx context.Context, frame string) (navpath.Pose, error) {
	l.calls++
	if l.calls == 2 {
		l.exec.Abort()
	}
	return navpath.NewPose(0, 0, 0), nil
}

func TestAbortStopsExecutionBeforeTickCap(t *testing.T) {
	base := capability.NewFakeBase(true)
	localizer := &abortingLocalizer{}
	logger := logging.NewTestLogger(t)

	exec := navigator.New(base, localizer, testPlanner(), fastConfig(), logger, clock.New(), rand.New(rand.NewSource(3)))
	localizer.exec = exec

	status, err := exec.Run(context.Background(), navpath.NewPose(0, 0, 0), navpath.NewPose(0.9, 0.9, 0), openMap(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, status, test.ShouldEqual, navigator.StateAborted)
	test.That(t, localizer.calls, test.ShouldBeLessThan, fastConfig().MaxTicks)
}
