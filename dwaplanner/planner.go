package dwaplanner

import (
	"math"

	"go.viam.com/nav/gridmap"
	"go.viam.com/nav/navpath"
)

// DwaPlanner holds the tunables a navigation attempt configures once and
// reuses on every control tick: velocity/acceleration limits, the
// simulation step and horizon, the sampling resolution, and the weight
// table governing candidate scoring. Treated as an immutable value:
// re-weighting replaces the whole planner rather than mutating a field in
// place, preserving the Limits invariant under concurrent reads.
type DwaPlanner struct {
	Limits             Limits
	ControllerDt       float64
	SimulationDuration float64
	NumVelSample       int
	Weights            []NamedWeight
}

// New builds a DwaPlanner from its tunables.
func New(limits Limits, controllerDt, simulationDuration float64, numVelSample int, weights []NamedWeight) *DwaPlanner {
	return &DwaPlanner{
		Limits:             limits,
		ControllerDt:       controllerDt,
		SimulationDuration: simulationDuration,
		NumVelSample:       numVelSample,
		Weights:            weights,
	}
}

// SampleVelocity produces (N+1)^2 + (N+1) candidate velocities, where
// N = NumVelSample. The rectangular grid spans the acceleration-feasible
// window around current, each axis clamped to the absolute velocity
// limits; N+1 further candidates fix linear velocity at exactly zero so
// an in-place rotation is always available even when the dynamic window
// excludes it.
func (p *DwaPlanner) SampleVelocity(current Velocity) []Velocity {
	n := p.NumVelSample

	xMin := clamp(current.X+p.Limits.MinAccel.X*p.ControllerDt, p.Limits.MinVelocity.X, p.Limits.MaxVelocity.X)
	xMax := clamp(current.X+p.Limits.MaxAccel.X*p.ControllerDt, p.Limits.MinVelocity.X, p.Limits.MaxVelocity.X)
	thetaMin := clamp(current.Theta+p.Limits.MinAccel.Theta*p.ControllerDt, p.Limits.MinVelocity.Theta, p.Limits.MaxVelocity.Theta)
	thetaMax := clamp(current.Theta+p.Limits.MaxAccel.Theta*p.ControllerDt, p.Limits.MinVelocity.Theta, p.Limits.MaxVelocity.Theta)

	xs := linspace(xMin, xMax, n+1)
	thetas := linspace(thetaMin, thetaMax, n+1)

	candidates := make([]Velocity, 0, (n+1)*(n+1)+(n+1))
	for _, x := range xs {
		for _, theta := range thetas {
			candidates = append(candidates, Velocity{X: x, Theta: theta})
		}
	}
	for _, theta := range thetas {
		candidates = append(candidates, Velocity{X: 0, Theta: theta})
	}
	return candidates
}

// ForwardSimulation advances floor(SimulationDuration/ControllerDt) steps
// from pose under the constant velocity v, composing the current pose with
// a body-frame twist increment each step. Poses are emitted after
// integration, so the starting pose is never included.
func (p *DwaPlanner) ForwardSimulation(pose navpath.Pose, v Velocity) navpath.RobotPath {
	steps := int(p.SimulationDuration / p.ControllerDt)
	path := make(navpath.RobotPath, 0, steps)
	current := pose
	twist := navpath.NewPose(v.X*p.ControllerDt, 0, v.Theta*p.ControllerDt)
	for i := 0; i < steps; i++ {
		current = current.Compose(twist)
		path = append(path, current)
	}
	return path
}

// PredictedPlanCandidates maps SampleVelocity(v) through ForwardSimulation,
// wrapping each resulting trajectory as an unscored Plan.
func (p *DwaPlanner) PredictedPlanCandidates(pose navpath.Pose, v Velocity) []Plan {
	velocities := p.SampleVelocity(v)
	plans := make([]Plan, len(velocities))
	for i, candidate := range velocities {
		plans[i] = Plan{
			Velocity: candidate,
			Cost:     0,
			Path:     p.ForwardSimulation(pose, candidate),
		}
	}
	return plans
}

// PlanLocalPath scores every candidate plan against layers (the named cost
// fields) and angles (the named angular references), selecting the
// candidate with lowest total weighted cost; ties favor whichever
// candidate was produced first. If no candidate scores below
// math.MaxFloat64 — every trajectory left the bounds of at least one
// weighted layer —
// the returned plan is the zero-velocity, empty-trajectory default with
// cost math.MaxFloat64, signalling the executor to halt.
func (p *DwaPlanner) PlanLocalPath(pose navpath.Pose, v Velocity, layers *gridmap.LayeredGridMap[uint8], angles *navpath.AngleTable) Plan {
	candidates := p.PredictedPlanCandidates(pose, v)

	best := Plan{Cost: math.MaxFloat64}
	found := false
	for _, candidate := range candidates {
		cost := p.scoreCandidate(candidate, layers, angles)
		candidate.Cost = cost
		if !found || cost < best.Cost {
			best = candidate
			found = true
		}
	}
	if !found || best.Cost == math.MaxFloat64 {
		return Plan{Cost: math.MaxFloat64}
	}
	return best
}

func (p *DwaPlanner) scoreCandidate(candidate Plan, layers *gridmap.LayeredGridMap[uint8], angles *navpath.AngleTable) float64 {
	total := 0.0
	for _, nw := range p.Weights {
		if layer, ok := layers.Layer(nw.Name); ok {
			distCost, inRange := trajectoryDistanceCost(layer, candidate.Path)
			if !inRange {
				return math.MaxFloat64
			}
			total += nw.Weight * distCost
		}
		if angleRef, ok := angles.Angle(nw.Name); ok {
			total += nw.Weight * angleDelta(angleRef, lastHeading(candidate.Path))
		}
	}
	return total
}

func lastHeading(path navpath.RobotPath) float64 {
	if len(path) == 0 {
		return 0
	}
	return path[len(path)-1].Theta
}

// trajectoryDistanceCost sums the layer's cost under every trajectory
// point. A point that leaves layer's bounds rejects the whole candidate.
func trajectoryDistanceCost(layer *gridmap.GridMap[uint8], path navpath.RobotPath) (float64, bool) {
	total := 0.0
	for _, pose := range path {
		cost, inRange := lookupCost(layer, gridmap.NewPosition(pose.X, pose.Y))
		if !inRange {
			return 0, false
		}
		total += cost
	}
	return total, true
}

// lookupCost reads a single cell's cost contribution. Obstacle and Unknown
// cells both contribute the maximum cell cost 255; Uninitialized is an
// implementation error reaching a cell the distance transform should have
// filled, and panics rather than silently miscounting.
func lookupCost(layer *gridmap.GridMap[uint8], pos gridmap.Position) (float64, bool) {
	cell, ok := layer.CellByPosition(pos)
	if !ok {
		return 0, false
	}
	switch {
	case cell.IsObstacle(), cell.IsUnknown():
		return 255, true
	case cell.IsUninitialized():
		panic("dwaplanner: scorer reached an uninitialized cost cell")
	default:
		v, _ := cell.Value()
		return float64(v), true
	}
}

// angleDelta returns |a - b| after renormalizing the difference to
// (-pi, pi], so a wraparound near +-pi never produces a spuriously large
// angular cost term.
func angleDelta(a, b float64) float64 {
	diff := a - b
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff <= -math.Pi {
		diff += 2 * math.Pi
	}
	return math.Abs(diff)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// linspace returns n evenly spaced values from lo to hi inclusive. n <= 1
// returns a single-element slice at lo.
func linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = lo + step*float64(i)
	}
	return out
}
