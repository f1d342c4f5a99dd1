package geom

// Triangle references three vertices in a Mesh's shared vertex table by
// index, plus the face normal carried over from the STL file (or recomputed
// by the loader). The core never relies on Normal for correctness, only
// vertex positions feed the plane intersector. Neither the slicing pipeline
// nor the G-code emitter reads Normal; it only records what the file held.
type Triangle struct {
	V      [3]int
	Normal Vec3
}

// Vertices resolves a Triangle's vertex indices against the owning Mesh.
func (t Triangle) Vertices(m *Mesh) [3]Vec3 {
	return [3]Vec3{
		m.Vertices[t.V[0]],
		m.Vertices[t.V[1]],
		m.Vertices[t.V[2]],
	}
}

// ZRange returns the min/max Z of the triangle's three vertices, used by
// the orchestrator to cull triangles that cannot intersect a given plane
// before running the full classification in §4.2.
func (t Triangle) ZRange(m *Mesh) (lo, hi float64) {
	v := t.Vertices(m)
	lo, hi = v[0].Z, v[0].Z
	for _, p := range v[1:] {
		if p.Z < lo {
			lo = p.Z
		}
		if p.Z > hi {
			hi = p.Z
		}
	}
	return lo, hi
}

// Mesh owns the vertex table and triangle table exclusively; Triangles
// reference vertices by index and never copy coordinates. A Mesh is built
// once by the STL loader and treated as immutable and safely
// read-shareable by every slicing worker thereafter.
type Mesh struct {
	Vertices  []Vec3
	Triangles []Triangle
	Bounds    Box3
}

// NewMesh builds a Mesh from a deduplicated vertex table and triangle list
// and computes its bounding box. Callers (the STL loader) are responsible
// for deduplication and NaN/Inf validation before calling this.
func NewMesh(vertices []Vec3, triangles []Triangle) *Mesh {
	m := &Mesh{Vertices: vertices, Triangles: triangles}
	if len(vertices) > 0 {
		m.Bounds = BoundsOf(vertices)
	}
	return m
}
