package gridmap

// NavigationGridMap pairs a full-map LayeredGridMap with a windowed local
// one, so an executor can hold both without re-deriving one from the other
// on every tick.
type NavigationGridMap[T any] struct {
	local  *LayeredGridMap[T]
	global *LayeredGridMap[T]
}

// NewNavigationGridMap builds a NavigationGridMap from its two halves.
func NewNavigationGridMap[T any](local, global *LayeredGridMap[T]) *NavigationGridMap[T] {
	return &NavigationGridMap[T]{local: local, global: global}
}

// LocalMap returns the windowed local layer set.
func (n *NavigationGridMap[T]) LocalMap() *LayeredGridMap[T] { return n.local }

// GlobalMap returns the full-map layer set.
func (n *NavigationGridMap[T]) GlobalMap() *LayeredGridMap[T] { return n.global }

// UpdateLocalMap replaces (or adds) the named local layer.
func (n *NavigationGridMap[T]) UpdateLocalMap(name string, m *GridMap[T]) {
	n.local.AddLayer(name, m)
}

// UpdateGlobalMap replaces (or adds) the named global layer.
func (n *NavigationGridMap[T]) UpdateGlobalMap(name string, m *GridMap[T]) {
	n.global.AddLayer(name, m)
}
