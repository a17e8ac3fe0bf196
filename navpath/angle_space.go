package navpath

// AngleSpace is a general named-angle map used by debug and CLI surfaces to
// report angular costs beyond AngleTable's three fixed names, without
// widening AngleTable's contract.
type AngleSpace struct {
	angles map[string]float64
}

// NewAngleSpace builds an AngleSpace from an initial set of angles. A nil
// map is treated as empty.
func NewAngleSpace(angles map[string]float64) *AngleSpace {
	if angles == nil {
		angles = make(map[string]float64)
	}
	return &AngleSpace{angles: angles}
}

// AddSpace inserts or replaces a named angle.
func (s *AngleSpace) AddSpace(name string, angle float64) {
	s.angles[name] = angle
}

// Space returns the named angle, or false if absent.
func (s *AngleSpace) Space(name string) (float64, bool) {
	v, ok := s.angles[name]
	return v, ok
}
