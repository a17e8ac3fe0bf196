package navigator

import (
	"time"

	"github.com/benbjohnson/clock"

	"go.viam.com/nav/navpath"
)

// timestampedPose records the last pose the executor observed and when, so
// CurrentVelocity can fall back to differencing when the base cannot
// report its own velocity. Ported from openrr-nav's PoseTimeStamped.
type timestampedPose struct {
	clk         clock.Clock
	pose        navpath.Pose
	initialized bool
	at          time.Time
}

func newTimestampedPose(clk clock.Clock) timestampedPose {
	return timestampedPose{clk: clk}
}

func (p *timestampedPose) set(pose navpath.Pose) {
	p.pose = pose
	p.at = p.clk.Now()
	p.initialized = true
}

func (p *timestampedPose) elapsed() time.Duration {
	return p.clk.Now().Sub(p.at)
}
