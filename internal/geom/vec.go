// Package geom provides the 3D and 2D primitives the slicing pipeline is
// built from: points, vectors, bounding boxes, triangles, meshes, line
// segments and polygons. All distances are millimetres, right-handed axes,
// Z is up.
package geom

import "math"

// Epsilon is the single tolerance used by every floating point comparison
// in the slicing pipeline: vertex classification, endpoint equality,
// zero-area rejection and polygon closure. Do not introduce a second,
// looser or tighter epsilon elsewhere; the test suite is tuned to this one.
const Epsilon = 1e-9

// Vec3 is a point or vector in 3-space: three finite coordinates in mm.
// One type covers both roles; which role it plays is a matter of calling
// convention, not representation.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Lerp returns the point t of the way from v to w; t is not clamped by
// this method, callers that need clamping (the plane intersector) do it
// themselves so the clamp is visible at the call site.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return v.Add(w.Sub(v).Scale(t))
}

// XY drops the Z coordinate, producing the 2D point used by layer geometry.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// IsFinite reports whether all three coordinates are finite (no NaN/Inf).
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// EqualEps reports whether v and w are equal within Epsilon on every axis.
func (v Vec3) EqualEps(w Vec3) bool {
	return math.Abs(v.X-w.X) <= Epsilon &&
		math.Abs(v.Y-w.Y) <= Epsilon &&
		math.Abs(v.Z-w.Z) <= Epsilon
}

// Vec2 is a point in the layer plane (X, Y in mm).
type Vec2 struct {
	X, Y float64
}

// EqualEps reports whether p and q are equal within Epsilon on both axes.
func (p Vec2) EqualEps(q Vec2) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}

// Sub returns p - q.
func (p Vec2) Sub(q Vec2) Vec2 {
	return Vec2{p.X - q.X, p.Y - q.Y}
}

// Len returns the Euclidean length of p treated as a vector from the origin.
func (p Vec2) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Box3 is an axis-aligned bounding box in 3-space.
type Box3 struct {
	Min, Max Vec3
}

// BoundsOf computes the bounding box of a non-empty point set. The caller
// must guard against an empty slice: an empty box would silently
// misreport every downstream Z schedule.
func BoundsOf(points []Vec3) Box3 {
	b := Box3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

// Box2 is an axis-aligned bounding box in the layer plane.
type Box2 struct {
	Min, Max Vec2
}
