package geom

// Segment2 is a line segment in the layer plane, implicitly at the Z of
// the layer that produced it.
type Segment2 struct {
	A, B Vec2
}

// Length returns the Euclidean length of the segment.
func (s Segment2) Length() float64 {
	return s.B.Sub(s.A).Len()
}

// EqualEps reports whether s and other have the same endpoints within
// Epsilon, in either orientation.
func (s Segment2) EqualEps(other Segment2) bool {
	same := s.A.EqualEps(other.A) && s.B.EqualEps(other.B)
	swapped := s.A.EqualEps(other.B) && s.B.EqualEps(other.A)
	return same || swapped
}

// ConnectsTo reports whether s shares an endpoint with other within
// Epsilon, in either orientation.
func (s Segment2) ConnectsTo(other Segment2) bool {
	return s.A.EqualEps(other.A) || s.A.EqualEps(other.B) ||
		s.B.EqualEps(other.A) || s.B.EqualEps(other.B)
}

// FarEndpoint reports whether s has an endpoint at at (within Epsilon)
// and, if so, returns s's remaining (far) endpoint.
func (s Segment2) FarEndpoint(at Vec2) (farEnd Vec2, ok bool) {
	switch {
	case s.A.EqualEps(at):
		return s.B, true
	case s.B.EqualEps(at):
		return s.A, true
	default:
		return Vec2{}, false
	}
}
