// Package stlio adapts github.com/hschendel/stl's binary/ASCII STL parser
// into the geom.Mesh the slicing core consumes: deduplicated vertex table,
// triangle list, and bounding box (§4.6). Mesh repair, non-manifold
// detection and multi-solid merging are out of scope here; the loader
// passes whatever the file contains through to the core, which tolerates
// degenerate triangles by construction.
package stlio

import (
	"fmt"
	"io"
	"math"

	"github.com/hschendel/stl"

	"github.com/krasin/goslicer/internal/geom"
	"github.com/krasin/goslicer/internal/sliceerr"
)

// Load parses an STL document (binary or ASCII, auto-detected by the
// underlying library) and builds a geom.Mesh from it.
func Load(r io.Reader) (*geom.Mesh, error) {
	solid, err := stl.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("stlio: read STL: %w", err)
	}
	return fromSolid(solid)
}

func fromSolid(solid *stl.Solid) (*geom.Mesh, error) {
	vertexIndex := make(map[geom.Vec3]int)
	var vertices []geom.Vec3
	triangles := make([]geom.Triangle, 0, len(solid.Triangles))

	lookup := func(v stl.Vec3) int {
		key := geom.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
		if idx, ok := vertexIndex[key]; ok {
			return idx
		}
		idx := len(vertices)
		vertices = append(vertices, key)
		vertexIndex[key] = idx
		return idx
	}

	for i, t := range solid.Triangles {
		var tri geom.Triangle
		for v := 0; v < 3; v++ {
			tri.V[v] = lookup(t.Vertices[v])
		}
		tri.Normal = geom.Vec3{X: float64(t.Normal[0]), Y: float64(t.Normal[1]), Z: float64(t.Normal[2])}
		if !vertices[tri.V[0]].IsFinite() || !vertices[tri.V[1]].IsFinite() || !vertices[tri.V[2]].IsFinite() {
			return nil, sliceerr.New(sliceerr.InvalidGeometry, fmt.Sprintf("triangle %d has a non-finite vertex", i))
		}
		triangles = append(triangles, tri)
	}

	return geom.NewMesh(vertices, triangles), nil
}

// Save writes mesh back out as a binary STL document, the format this
// CLI's scale command writes. Per-triangle normals are recomputed from
// vertex winding rather than carried over, since a caller that moved
// vertices (scale, in particular) has already invalidated whatever
// normal the loader captured.
func Save(w io.Writer, mesh *geom.Mesh) error {
	solid := &stl.Solid{
		Triangles: make([]stl.Triangle, len(mesh.Triangles)),
	}
	for i, tri := range mesh.Triangles {
		v := tri.Vertices(mesh)
		n := faceNormal(v)
		solid.Triangles[i] = stl.Triangle{
			Normal: stl.Vec3{float32(n.X), float32(n.Y), float32(n.Z)},
			Vertices: [3]stl.Vec3{
				{float32(v[0].X), float32(v[0].Y), float32(v[0].Z)},
				{float32(v[1].X), float32(v[1].Y), float32(v[1].Z)},
				{float32(v[2].X), float32(v[2].Y), float32(v[2].Z)},
			},
		}
	}
	return solid.WriteAll(w)
}

func faceNormal(v [3]geom.Vec3) geom.Vec3 {
	e1 := v[1].Sub(v[0])
	e2 := v[2].Sub(v[0])
	n := geom.Vec3{
		X: e1.Y*e2.Z - e1.Z*e2.Y,
		Y: e1.Z*e2.X - e1.X*e2.Z,
		Z: e1.X*e2.Y - e1.Y*e2.X,
	}
	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if length == 0 {
		return geom.Vec3{}
	}
	return n.Scale(1 / length)
}
