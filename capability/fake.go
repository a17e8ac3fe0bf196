package capability

import (
	"context"
	"sync"

	"go.viam.com/nav/dwaplanner"
	"go.viam.com/nav/navpath"
)

// FakeBase is an in-memory BaseVelocitySink for tests: it records the last
// commanded velocity and echoes it back from CurrentVelocity, matching the
// rdk convention of a `fake` implementation per component type used
// throughout this module's test suites.
type FakeBase struct {
	mu         sync.Mutex
	lastSent   dwaplanner.Velocity
	reportable bool
}

// NewFakeBase builds a FakeBase. When reportable is false, CurrentVelocity
// always reports "unavailable" so callers can exercise the pose-differencing
// fallback.
func NewFakeBase(reportable bool) *FakeBase {
	return &FakeBase{reportable: reportable}
}

// SendVelocity records v as the last commanded velocity.
func (b *FakeBase) SendVelocity(ctx context.Context, v dwaplanner.Velocity) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastSent = v
	return nil
}

// CurrentVelocity returns the last velocity sent to SendVelocity.
func (b *FakeBase) CurrentVelocity(ctx context.Context) (dwaplanner.Velocity, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.reportable {
		return dwaplanner.Velocity{}, false, nil
	}
	return b.lastSent, true, nil
}

// LastSent returns the most recent velocity passed to SendVelocity, for
// test assertions.
func (b *FakeBase) LastSent() dwaplanner.Velocity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSent
}

// FakePoseSource is an in-memory Localizer driven by a scripted sequence of
// poses, advancing one step per CurrentPose call and holding the last pose
// once exhausted.
type FakePoseSource struct {
	mu     sync.Mutex
	poses  []navpath.Pose
	cursor int
}

// NewFakePoseSource builds a FakePoseSource that replays poses in order.
func NewFakePoseSource(poses ...navpath.Pose) *FakePoseSource {
	return &FakePoseSource{poses: poses}
}

// CurrentPose returns the next scripted pose, ignoring frame (a single fake
// frame is assumed), and holds the final pose once the script is exhausted.
func (f *FakePoseSource) CurrentPose(ctx context.Context, frame string) (navpath.Pose, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.poses) == 0 {
		return navpath.Pose{}, nil
	}
	idx := f.cursor
	if idx >= len(f.poses) {
		idx = len(f.poses) - 1
	} else {
		f.cursor++
	}
	return f.poses[idx], nil
}
