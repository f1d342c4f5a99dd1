package geom

import "testing"

func TestIntersectTrianglePlaneEntirelyAbove(t *testing.T) {
	v := [3]Vec3{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}}
	if _, ok := IntersectTrianglePlane(v, 0); ok {
		t.Fatal("expected no intersection for triangle entirely above plane")
	}
}

func TestIntersectTrianglePlaneEntirelyBelow(t *testing.T) {
	v := [3]Vec3{{0, 0, -1}, {1, 0, -1}, {0, 1, -1}}
	if _, ok := IntersectTrianglePlane(v, 0); ok {
		t.Fatal("expected no intersection for triangle entirely below plane")
	}
}

func TestIntersectTrianglePlaneCoplanar(t *testing.T) {
	v := [3]Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	if _, ok := IntersectTrianglePlane(v, 0); ok {
		t.Fatal("expected no intersection for coplanar triangle (ambiguous, skipped)")
	}
}

func TestIntersectTrianglePlaneTwoAboveOneBelow(t *testing.T) {
	v := [3]Vec3{{0, 0, 1}, {1, 0, 1}, {0, 1, -1}}
	seg, ok := IntersectTrianglePlane(v, 0)
	if !ok {
		t.Fatal("expected an intersection segment")
	}
	// Both endpoints should lie on edges from the BELOW vertex (0,1,-1).
	wantA := Vec2{X: 0, Y: 0.5}
	wantB := Vec2{X: 0.5, Y: 0.5}
	if !(seg.A.EqualEps(wantA) || seg.A.EqualEps(wantB)) {
		t.Fatalf("segment endpoint A = %+v not on expected edges", seg.A)
	}
}

func TestIntersectTrianglePlaneOneOnVertexOppositeEdgeCrosses(t *testing.T) {
	// vertex 0 ON the plane, vertex 1 ABOVE, vertex 2 BELOW.
	v := [3]Vec3{{0, 0, 0}, {1, 0, 1}, {0, 1, -1}}
	seg, ok := IntersectTrianglePlane(v, 0)
	if !ok {
		t.Fatal("expected an intersection segment")
	}
	if !seg.A.EqualEps(Vec2{0, 0}) && !seg.B.EqualEps(Vec2{0, 0}) {
		t.Fatalf("expected one endpoint at the ON vertex, got %+v", seg)
	}
}

func TestIntersectTrianglePlaneTwoOnVertices(t *testing.T) {
	// vertex 0 and 1 ON the plane, vertex 2 ABOVE: segment between the ON vertices.
	v := [3]Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 1}}
	seg, ok := IntersectTrianglePlane(v, 0)
	if !ok {
		t.Fatal("expected an intersection segment")
	}
	want := Segment2{A: Vec2{0, 0}, B: Vec2{1, 0}}
	if !seg.EqualEps(want) {
		t.Fatalf("seg = %+v, want %+v", seg, want)
	}
}

func TestIntersectTrianglePlaneVertexTouchOnly(t *testing.T) {
	// vertex 0 ON the plane, vertices 1 and 2 both ABOVE: no crossing edge.
	v := [3]Vec3{{0, 0, 0}, {1, 0, 1}, {0, 1, 2}}
	if _, ok := IntersectTrianglePlane(v, 0); ok {
		t.Fatal("expected no segment when the ON vertex only touches the plane")
	}
}

func TestIntersectTrianglePlaneVertexExactlyOnScheduledZ(t *testing.T) {
	// Two triangles sharing an edge whose vertices sit exactly on the
	// plane, one on each side of it: each triangle yields exactly the
	// shared edge, so the segment along that edge is not missing.
	z := 1.0
	shared := Segment2{A: Vec2{0, 0}, B: Vec2{1, 0}}
	tris := [][3]Vec3{
		{{0, 0, 1}, {1, 0, 1}, {0.5, -1, 2}}, // both shared verts ON, third ABOVE
		{{0, 0, 1}, {1, 0, 1}, {0.5, 1, 0}},  // both shared verts ON, third BELOW
	}
	for i, tri := range tris {
		seg, ok := IntersectTrianglePlane(tri, z)
		if !ok {
			t.Fatalf("triangle %d: expected a segment", i)
		}
		if !seg.EqualEps(shared) {
			t.Fatalf("triangle %d: seg = %+v, want %+v", i, seg, shared)
		}
	}
}
