package gridmap_test

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/nav/gridmap"
)

func TestNavigationGridMapSeparatesLocalAndGlobal(t *testing.T) {
	local := gridmap.NewLayeredGridMap[uint8]()
	global := gridmap.NewLayeredGridMap[uint8]()
	nav := gridmap.NewNavigationGridMap[uint8](local, global)

	m := gridmap.New[uint8](gridmap.NewPosition(0, 0), gridmap.NewPosition(1, 1), 0.5)
	nav.UpdateLocalMap("window", m)

	_, ok := nav.LocalMap().Layer("window")
	test.That(t, ok, test.ShouldBeTrue)
	_, ok = nav.GlobalMap().Layer("window")
	test.That(t, ok, test.ShouldBeFalse)

	nav.UpdateGlobalMap("static", m)
	_, ok = nav.GlobalMap().Layer("static")
	test.That(t, ok, test.ShouldBeTrue)
}
