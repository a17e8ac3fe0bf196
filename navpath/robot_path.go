package navpath

// RobotPath is an ordered sequence of Pose. Not guaranteed unique or
// monotone.
type RobotPath []Pose

// NavigationRobotPath bundles the local and global robot paths plus any
// number of caller-named auxiliary paths (e.g. a recorded teach-path, a
// debug overlay) kept alongside them for the lifetime of a navigation
// attempt.
type NavigationRobotPath struct {
	Local       RobotPath
	Global      RobotPath
	UserDefined map[string]RobotPath
}

// NewNavigationRobotPath builds a NavigationRobotPath from its local and
// global halves.
func NewNavigationRobotPath(local, global RobotPath) *NavigationRobotPath {
	return &NavigationRobotPath{
		Local:       local,
		Global:      global,
		UserDefined: make(map[string]RobotPath),
	}
}

// SetLocalPath replaces the local path.
func (n *NavigationRobotPath) SetLocalPath(path RobotPath) { n.Local = path }

// SetGlobalPath replaces the global path.
func (n *NavigationRobotPath) SetGlobalPath(path RobotPath) { n.Global = path }

// AddUserDefinedPath inserts or replaces a named auxiliary path.
func (n *NavigationRobotPath) AddUserDefinedPath(name string, path RobotPath) {
	n.UserDefined[name] = path
}

// UserDefinedPath returns the named auxiliary path, or false if absent.
func (n *NavigationRobotPath) UserDefinedPath(name string) (RobotPath, bool) {
	path, ok := n.UserDefined[name]
	return path, ok
}
