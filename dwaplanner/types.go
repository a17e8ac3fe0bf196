// Package dwaplanner implements the Dynamic-Window-Approach local planner:
// velocity sampling inside an acceleration-feasible window, forward
// simulation of each candidate, and weighted multi-objective scoring
// against the cost fields and angle table produced every control tick.
package dwaplanner

import "go.viam.com/nav/navpath"

// Velocity is a differential-drive command: linear speed in m/s and
// angular speed in rad/s.
type Velocity struct {
	X, Theta float64
}

// Acceleration has the same shape as Velocity, units per second squared.
type Acceleration struct {
	X, Theta float64
}

// Limits bounds the velocities and accelerations the sampler may consider.
// min <= max componentwise is assumed by the sampler, not enforced here.
type Limits struct {
	MaxVelocity Velocity
	MaxAccel    Acceleration
	MinVelocity Velocity
	MinAccel    Acceleration
}

// Plan is a candidate velocity command, its scored cost, and the predicted
// trajectory that produced the cost.
type Plan struct {
	Velocity Velocity
	Cost     float64
	Path     navpath.RobotPath
}

// NamedWeight pairs a cost-field or angle-table name with its scoring
// weight. Stored as an ordered slice rather than a map: Go map iteration
// order is randomized per process, and PlanLocalPath must sum identically
// ordered terms across runs to stay deterministic.
type NamedWeight struct {
	Name   string
	Weight float64
}

// Well-known weight-table names, matching costmap's layer names and
// navpath's angle-table names.
const (
	PathWeight          = "path"
	GoalWeight          = "goal"
	ObstacleWeight      = "obstacle"
	LocalGoalWeight     = "local_goal"
	RotationWeight      = "rotation"
	PathDirectionWeight = "path_direction"
	GoalDirectionWeight = "goal_direction"
)

// DefaultWeights returns the recommended default weight table from
// spec.md §4.5.
func DefaultWeights() []NamedWeight {
	return []NamedWeight{
		{Name: PathWeight, Weight: 0.8},
		{Name: GoalWeight, Weight: 0.1},
		{Name: ObstacleWeight, Weight: 0.3},
		{Name: LocalGoalWeight, Weight: 0.8},
		{Name: RotationWeight, Weight: 0.1},
		{Name: PathDirectionWeight, Weight: 0.1},
		{Name: GoalDirectionWeight, Weight: 0.01},
	}
}
