package gridmap_test

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/nav/gridmap"
)

func TestConverterToIndex(t *testing.T) {
	l := gridmap.New[uint8](gridmap.NewPosition(0.1, 0.2), gridmap.NewPosition(0.5, 0.8), 0.1)

	g, ok := l.ToGrid(gridmap.NewPosition(0.3, 0.4))
	test.That(t, ok, test.ShouldBeTrue)
	idx, ok := l.ToIndex(g)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, uint(9))

	g, ok = l.ToGrid(gridmap.NewPosition(0.35, 0.4))
	test.That(t, ok, test.ShouldBeTrue)
	idx, ok = l.ToIndex(g)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, uint(10))

	g, ok = l.ToGrid(gridmap.NewPosition(0.4, 0.4))
	test.That(t, ok, test.ShouldBeTrue)
	idx, ok = l.ToIndex(g)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, uint(11))

	_, ok = l.ToGrid(gridmap.NewPosition(0.0, 0.4))
	test.That(t, ok, test.ShouldBeFalse)
}

func TestConverterRoundTrip(t *testing.T) {
	conv := gridmap.NewConverter(gridmap.NewPosition(-1, -1), gridmap.NewPosition(3, 1), 0.1)
	for gy := uint(0); gy < conv.Size().Height; gy += 7 {
		for gx := uint(0); gx < conv.Size().Width; gx += 11 {
			g := gridmap.NewGrid(gx, gy)
			idx, ok := conv.ToIndex(g)
			test.That(t, ok, test.ShouldBeTrue)
			back, ok := conv.GridFromIndex(idx)
			test.That(t, ok, test.ShouldBeTrue)
			test.That(t, back, test.ShouldResemble, g)
		}
	}
}

func TestConverterConstructionPanicsOnBadExtent(t *testing.T) {
	defer func() {
		r := recover()
		test.That(t, r, test.ShouldNotBeNil)
	}()
	gridmap.NewConverter(gridmap.NewPosition(1, 1), gridmap.NewPosition(0, 0), 0.1)
}

func TestNeighbors4ExcludesUnderflow(t *testing.T) {
	origin := gridmap.NewGrid(0, 0)
	neighbors := origin.Neighbors4()
	test.That(t, len(neighbors), test.ShouldEqual, 2)
	for _, n := range neighbors {
		test.That(t, n, test.ShouldNotResemble, gridmap.NewGrid(0, 0))
	}

	interior := gridmap.NewGrid(2, 3)
	neighbors = interior.Neighbors4()
	test.That(t, len(neighbors), test.ShouldEqual, 4)
}
