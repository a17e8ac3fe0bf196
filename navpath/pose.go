// Package navpath implements planar robot poses, path interpolation,
// nearest-point search, and the angle-table used as angular scoring terms.
package navpath

import "math"

// Pose is a planar rigid transform: translation (x, y) plus rotation angle
// theta, normalised to (-pi, pi].
type Pose struct {
	X, Y, Theta float64
}

// NewPose builds a Pose, normalising theta to (-pi, pi].
func NewPose(x, y, theta float64) Pose {
	return Pose{X: x, Y: y, Theta: normalizeAngle(theta)}
}

func normalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta <= -math.Pi {
		theta += 2 * math.Pi
	} else if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}

// Compose returns p composed with q, meaning "apply q in p's frame" —
// p.Compose(q) = p * q in the Isometry2 sense: rotate q's translation by
// p's rotation, then add p's translation, and sum the angles.
func (p Pose) Compose(q Pose) Pose {
	sin, cos := math.Sincos(p.Theta)
	x := p.X + cos*q.X - sin*q.Y
	y := p.Y + sin*q.X + cos*q.Y
	return NewPose(x, y, p.Theta+q.Theta)
}

// DistanceTo returns the Euclidean distance between two poses' translations.
func (p Pose) DistanceTo(other Pose) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Hypot(dx, dy)
}
