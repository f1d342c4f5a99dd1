package geom

import "math"

// Polygon is an ordered sequence of vertices in the layer plane. A polygon
// produced by the layer builder (§4.3) is closed: its first and last
// vertices are equal within Epsilon. Outer-vs-hole is not encoded in the
// type; it is a classification computed by the island classifier (§4.4)
// and stored as structure (Island.Outer / Island.Holes), not as a tag on
// Polygon itself.
type Polygon []Vec2

// SignedArea computes the shoelace signed area. Positive is
// counter-clockwise, negative is clockwise. The last vertex is expected to
// duplicate the first (closed polygon); if it doesn't, the polygon is
// treated as implicitly closed by wrapping the index.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// Area returns the absolute value of SignedArea.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsClockwise reports whether the polygon winds clockwise (signed area < 0).
func (p Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// IsDegenerate reports whether the polygon's absolute area is within
// Epsilon of zero; callers must discard such polygons rather than feed
// them into island classification.
func (p Polygon) IsDegenerate() bool {
	return p.Area() <= Epsilon
}

// Reversed returns a copy of p with vertex order reversed, flipping its
// winding direction.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// IsClosed reports whether the first and last vertex coincide within
// Epsilon, as required of every polygon the layer builder emits.
func (p Polygon) IsClosed() bool {
	if len(p) < 2 {
		return false
	}
	return p[0].EqualEps(p[len(p)-1])
}

// Bounds returns the axis-aligned bounding box of the polygon's vertices.
func (p Polygon) Bounds() Box2 {
	b := Box2{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
	}
	return b
}

// ContainsPoint tests point-in-polygon via horizontal ray casting to the
// right of pt. A point exactly on the boundary is reported inside, per
// spec. Edges level with pt.Y on both endpoints contribute no crossing;
// edges with exactly one endpoint level with pt.Y use the
// upward-edge-inclusive / downward-edge-exclusive convention so a vertex
// touched by the ray is never double-counted.
func (p Polygon) ContainsPoint(pt Vec2) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	if p.onBoundary(pt) {
		return true
	}
	inside := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := p[i], p[j]
		// upward edge: a.Y <= pt.Y < b.Y ; downward edge: b.Y <= pt.Y < a.Y
		upward := a.Y <= pt.Y && pt.Y < b.Y
		downward := b.Y <= pt.Y && pt.Y < a.Y
		if upward || downward {
			// X coordinate where the edge crosses the horizontal line y = pt.Y
			xCross := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if xCross > pt.X {
				inside = !inside
			}
		}
	}
	return inside
}

func (p Polygon) onBoundary(pt Vec2) bool {
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := p[i], p[j]
		if segmentContainsPoint(a, b, pt) {
			return true
		}
	}
	return false
}

// segmentContainsPoint reports whether pt lies on segment a-b within
// Epsilon, via the collinearity + bounding-box test.
func segmentContainsPoint(a, b, pt Vec2) bool {
	cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
	if math.Abs(cross) > Epsilon {
		return false
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return pt.X >= minX-Epsilon && pt.X <= maxX+Epsilon &&
		pt.Y >= minY-Epsilon && pt.Y <= maxY+Epsilon
}

// RepresentativeInteriorPoint returns a point guaranteed to lie in the
// polygon's interior (not on its boundary), used by the island classifier
// to test containment between sibling polygons. It nudges the midpoint of
// the first edge inward along that edge's inward normal by a small step,
// so the point hugs p's own boundary and does not fall inside a polygon
// nested within p. If the first edge has zero length, the vertex centroid
// is returned instead.
func (p Polygon) RepresentativeInteriorPoint() Vec2 {
	// Step inward from the midpoint of the first edge along its inward
	// normal by a small fraction of the edge length.
	a, b := p[0], p[1]
	mid := Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	edge := b.Sub(a)
	normal := Vec2{X: -edge.Y, Y: edge.X} // rotate 90°; sign resolved below
	length := normal.Len()
	if length == 0 {
		return p.centroid()
	}
	step := edge.Len() * 1e-3
	unit := Vec2{X: normal.X / length, Y: normal.Y / length}
	candidate := Vec2{X: mid.X + unit.X*step, Y: mid.Y + unit.Y*step}
	if p.ContainsPoint(candidate) {
		return candidate
	}
	// Normal pointed outward; flip it.
	return Vec2{X: mid.X - unit.X*step, Y: mid.Y - unit.Y*step}
}

func (p Polygon) centroid() Vec2 {
	var sx, sy float64
	n := len(p)
	for _, v := range p {
		sx += v.X
		sy += v.Y
	}
	return Vec2{X: sx / float64(n), Y: sy / float64(n)}
}
