package gridmap_test

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/nav/gridmap"
)

func TestCellLifecycle(t *testing.T) {
	m := gridmap.New[float64](gridmap.NewPosition(0.1, 0.2), gridmap.NewPosition(0.5, 0.8), 0.1)

	cell, ok := m.CellByPosition(gridmap.NewPosition(0.3, 0.4))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cell.IsUninitialized(), test.ShouldBeTrue)

	test.That(t, m.SetValueByPosition(gridmap.NewPosition(0.3, 0.4), 1.0), test.ShouldBeTrue)

	cell, ok = m.CellByPosition(gridmap.NewPosition(0.3, 0.4))
	test.That(t, ok, test.ShouldBeTrue)
	v, hasValue := cell.Value()
	test.That(t, hasValue, test.ShouldBeTrue)
	test.That(t, v, test.ShouldEqual, 1.0)
}

func TestCopyWithoutValuePreservesObstacleAndUnknown(t *testing.T) {
	m := gridmap.New[uint8](gridmap.NewPosition(0, 0), gridmap.NewPosition(1, 1), 0.5)
	test.That(t, m.SetObstacle(gridmap.NewGrid(0, 0)), test.ShouldBeTrue)
	test.That(t, m.SetValue(gridmap.NewGrid(1, 0), 42), test.ShouldBeTrue)
	test.That(t, m.SetCell(gridmap.NewGrid(0, 1), gridmap.UnknownCell[uint8]()), test.ShouldBeTrue)

	copyMap := m.CopyWithoutValue()

	obstacleCell, ok := copyMap.Cell(gridmap.NewGrid(0, 0))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, obstacleCell.IsObstacle(), test.ShouldBeTrue)

	valueCell, ok := copyMap.Cell(gridmap.NewGrid(1, 0))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, valueCell.IsUninitialized(), test.ShouldBeTrue)

	unknownCell, ok := copyMap.Cell(gridmap.NewGrid(0, 1))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, unknownCell.IsUnknown(), test.ShouldBeTrue)
}

func TestOutOfRangeNeverPanics(t *testing.T) {
	m := gridmap.New[uint8](gridmap.NewPosition(0, 0), gridmap.NewPosition(1, 1), 0.5)
	_, ok := m.Cell(gridmap.NewGrid(100, 100))
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, m.SetValue(gridmap.NewGrid(100, 100), 1), test.ShouldBeFalse)
}
