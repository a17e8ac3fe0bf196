package navigator

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"go.viam.com/nav/capability"
	"go.viam.com/nav/costmap"
	"go.viam.com/nav/dwaplanner"
	"go.viam.com/nav/globalplan"
	"go.viam.com/nav/gridmap"
	"go.viam.com/nav/logging"
	"go.viam.com/nav/naverrors"
	"go.viam.com/nav/navpath"
)

// ExecutorConfig bundles the per-attempt tunables spec.md §4.6 and §9 call
// out by name: the localization frame, the arrival thresholds, the tick
// cap, and the control period.
type ExecutorConfig struct {
	Frame                 string
	GoalThresholdDistance float64
	GoalThresholdTheta    float64
	MaxTicks              int
	ControllerDt          time.Duration
}

// DefaultExecutorConfig returns the recommended defaults from spec.md §4.6:
// D_goal = 0.1m, Theta_goal = 0.4rad, 300 ticks at 100ms.
func DefaultExecutorConfig(frame string) ExecutorConfig {
	return ExecutorConfig{
		Frame:                 frame,
		GoalThresholdDistance: 0.1,
		GoalThresholdTheta:    0.4,
		MaxTicks:              300,
		ControllerDt:          100 * time.Millisecond,
	}
}

// Executor orchestrates one navigation attempt end to end: global planning
// once, then a per-tick local-plan loop until arrival, failure, the tick
// cap, or cooperative cancellation. The DWA planner and the status each sit
// behind their own lock, held for a single read or write; the planner is
// replaced wholesale rather than mutated field-by-field to preserve its
// Limits invariant. The cost maps, the angle table, and the global path
// carry no lock: Run's goroutine writes them, and DiagnosticAngles reads the
// angle table without synchronizing with it.
type Executor struct {
	base      capability.BaseVelocitySink
	localizer capability.Localizer
	cfg       ExecutorConfig
	logger    logging.Logger
	clk       clock.Clock
	rng       *rand.Rand
	isRunning atomic.Bool

	plannerMu sync.RWMutex
	planner   *dwaplanner.DwaPlanner

	stateMu  sync.RWMutex
	status   Status
	lastPose timestampedPose

	costMaps   *costmap.CostMaps
	angleTable *navpath.AngleTable
	globalPath navpath.RobotPath
	sessionID  uuid.UUID
}

// New builds an Executor. rng may be nil, in which case the global
// planner's tree growth uses a fixed-seed RNG so tests are reproducible by
// default; pass a caller-seeded *rand.Rand for anything else.
func New(
	base capability.BaseVelocitySink,
	localizer capability.Localizer,
	planner *dwaplanner.DwaPlanner,
	cfg ExecutorConfig,
	logger logging.Logger,
	clk clock.Clock,
	rng *rand.Rand,
) *Executor {
	if clk == nil {
		clk = clock.New()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Executor{
		base:      base,
		localizer: localizer,
		planner:   planner,
		cfg:       cfg,
		logger:    logger,
		clk:       clk,
		rng:       rng,
		status:    StateInit,
		lastPose:  newTimestampedPose(clk),
	}
}

// SessionID returns the identifier assigned to the most recent or current
// Run call, for correlating this attempt's log lines. Zero-valued before
// the first Run.
func (e *Executor) SessionID() uuid.UUID {
	return e.sessionID
}

// SetPlanner atomically replaces the active DWA planner. Callers must
// construct a whole new *dwaplanner.DwaPlanner rather than mutating an
// existing one in place, per spec.md §9's "replace the planner, don't
// mutate its fields piecewise."
func (e *Executor) SetPlanner(p *dwaplanner.DwaPlanner) {
	e.plannerMu.Lock()
	defer e.plannerMu.Unlock()
	e.planner = p
}

func (e *Executor) currentPlanner() *dwaplanner.DwaPlanner {
	e.plannerMu.RLock()
	defer e.plannerMu.RUnlock()
	return e.planner
}

// Status returns the executor's current state.
func (e *Executor) Status() Status {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.status
}

func (e *Executor) setStatus(s Status) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	e.status = s
}

// Abort requests cooperative cancellation: the next tick observes it and
// transitions to ABORTED after sending a final stop command.
func (e *Executor) Abort() {
	e.isRunning.Store(false)
}

// Run drives one full navigation attempt from start to goal over
// originalMap: INIT -> PLANNING_GLOBAL (global route via globalplan.Plan)
// -> EXECUTING (per-tick DWA loop) -> a terminal status. Blocking; call
// from a dedicated goroutine (e.g. via go.viam.com/utils.ManagedGo) to run
// concurrently with a driver or UI activity per spec.md §5.
func (e *Executor) Run(ctx context.Context, start, goal navpath.Pose, originalMap *gridmap.GridMap[uint8]) (Status, error) {
	e.isRunning.Store(true)
	e.sessionID = uuid.New()
	e.setStatus(StatePlanningGlobal)
	e.logger.Infow("navigation attempt starting", "sessionID", e.sessionID, "start", start, "goal", goal)

	freeSpace := globalplan.FreeSpaceFromMap(originalMap)
	path, ok := globalplan.Plan(freeSpace, originalMap.MinPoint(), originalMap.MaxPoint(), start, goal, e.rng)
	if !ok {
		return e.terminate(ctx, StateFailed, naverrors.Other("global planner failed to connect start and goal"))
	}
	e.globalPath = path

	e.costMaps = costmap.New(originalMap, path, start, goal)
	e.angleTable = navpath.NewAngleTable(start.Theta, goal.Theta)
	e.lastPose = newTimestampedPose(e.clk)

	e.setStatus(StateExecuting)

	for tick := 0; tick < e.cfg.MaxTicks; tick++ {
		if ctx.Err() != nil {
			return e.terminate(ctx, StateAborted, ctx.Err())
		}
		if !e.isRunning.Load() {
			return e.terminate(ctx, StateAborted, nil)
		}

		arrived, err := e.tick(ctx, goal)
		if err != nil {
			return e.terminate(ctx, StateFailed, err)
		}
		if arrived {
			return e.terminate(ctx, StateArrived, nil)
		}

		select {
		case <-ctx.Done():
			return e.terminate(ctx, StateAborted, ctx.Err())
		case <-e.clk.After(e.cfg.ControllerDt):
		}
	}

	return e.terminate(ctx, StateFailed, naverrors.Other("navigation attempt exceeded max tick count"))
}

// tick executes one EXECUTING-state control cycle per spec.md §4.6.
func (e *Executor) tick(ctx context.Context, goal navpath.Pose) (bool, error) {
	pose, err := e.localizer.CurrentPose(ctx, e.cfg.Frame)
	if err != nil {
		return false, naverrors.Otherf("localization failed: %v", err)
	}

	velocity, err := e.currentVelocity(ctx, pose)
	if err != nil {
		return false, err
	}

	e.costMaps.Update(nil, e.globalPath, pose, goal, costmap.UpdateOptions{
		RebuildLocalGoal: true,
	})
	e.angleTable.Update(pose, e.globalPath)

	planner := e.currentPlanner()
	plan := planner.PlanLocalPath(pose, velocity, e.costMaps.Layers(), e.angleTable)
	if plan.Cost == math.MaxFloat64 {
		return false, naverrors.Other("no admissible local plan: every candidate left its cost layer's bounds")
	}

	if err := e.base.SendVelocity(ctx, plan.Velocity); err != nil {
		return false, naverrors.Otherf("send velocity failed: %v", err)
	}
	e.lastPose.set(pose)

	return e.reachedGoal(pose, goal), nil
}

// currentVelocity implements spec.md §4.6 step 2: prefer the base's own
// report, else estimate from pose differencing against lastPose, else
// zero.
func (e *Executor) currentVelocity(ctx context.Context, pose navpath.Pose) (dwaplanner.Velocity, error) {
	if v, ok, err := e.base.CurrentVelocity(ctx); err != nil {
		return dwaplanner.Velocity{}, naverrors.Otherf("base velocity query failed: %v", err)
	} else if ok {
		return v, nil
	}

	if !e.lastPose.initialized {
		return dwaplanner.Velocity{}, nil
	}
	dt := e.lastPose.elapsed().Seconds()
	if dt <= 0 {
		return dwaplanner.Velocity{}, nil
	}
	dx := pose.X - e.lastPose.pose.X
	dy := pose.Y - e.lastPose.pose.Y
	dtheta := pose.Theta - e.lastPose.pose.Theta
	linear := math.Hypot(dx, dy) / dt
	return dwaplanner.Velocity{X: linear, Theta: dtheta / dt}, nil
}

// DiagnosticAngles reports the current tick's angle table plus a derived
// heading_error entry (the absolute difference between rotation and
// goal_direction), for debug and CLI surfaces. Returns nil before the
// first tick.
func (e *Executor) DiagnosticAngles() *navpath.AngleSpace {
	if e.angleTable == nil {
		return nil
	}
	space := navpath.NewAngleSpace(e.angleTable.Snapshot())
	rotation, _ := e.angleTable.Angle(navpath.RotationAngle)
	goalDirection, _ := e.angleTable.Angle(navpath.GoalDirectionAngle)
	space.AddSpace("heading_error", angleAbsDiff(goalDirection, rotation))
	return space
}

func (e *Executor) reachedGoal(pose, goal navpath.Pose) bool {
	dist := pose.DistanceTo(goal)
	thetaDiff := angleAbsDiff(goal.Theta, pose.Theta)
	return dist < e.cfg.GoalThresholdDistance && thetaDiff < e.cfg.GoalThresholdTheta
}

// terminate settles the executor's status and sends the final zero-velocity
// stop command required on every terminal exit, including a failed global
// plan.
func (e *Executor) terminate(ctx context.Context, status Status, cause error) (Status, error) {
	e.setStatus(status)
	e.isRunning.Store(false)
	stopErr := e.base.SendVelocity(ctx, dwaplanner.Velocity{})
	if stopErr != nil {
		e.logger.Warnw("failed to send final stop command", "sessionID", e.sessionID, "status", status.String(), "error", stopErr)
	}
	return status, multierr.Combine(cause, stopErr)
}

// angleAbsDiff returns |a - b| renormalized to (-pi, pi] so a wraparound
// near +-pi never reports a spuriously large arrival error.
func angleAbsDiff(a, b float64) float64 {
	diff := a - b
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff <= -math.Pi {
		diff += 2 * math.Pi
	}
	return math.Abs(diff)
}
