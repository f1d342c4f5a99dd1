// Package layer stitches unordered plane-triangle intersection segments
// into closed polygons (§4.3) and classifies those polygons into islands
// of outer contour plus holes (§4.4), producing the Layer and Stack types
// that the slicing orchestrator assembles.
package layer

import (
	"github.com/krasin/goslicer/internal/geom"
)

// StitchResult is the output of Stitch: the closed polygons it managed to
// close, plus a count of segments abandoned in open (unclosed) contours.
type StitchResult struct {
	Polygons []geom.Polygon
	Open     int
}

// Stitch implements the greedy walk of §4.3: repeatedly pick a segment,
// extend the open end (frontier) by searching the remaining pool for a
// connecting segment, and close when the frontier returns to the start.
// Segments that cannot be extended to closure are dropped and counted in
// Open rather than failing the whole layer.
func Stitch(segments []geom.Segment2) StitchResult {
	pool := make([]geom.Segment2, len(segments))
	copy(pool, segments)

	var result StitchResult
	for len(pool) > 0 {
		seg := pool[0]
		pool = pool[1:]

		start := seg.A
		frontier := seg.B
		poly := geom.Polygon{start, frontier}

		closed := false
		for {
			if frontier.EqualEps(start) {
				closed = true
				break
			}
			idx := -1
			var next geom.Vec2
			for i, cand := range pool {
				if far, ok := cand.FarEndpoint(frontier); ok {
					idx, next = i, far
					break
				}
			}
			if idx == -1 {
				break // open contour: cannot extend further
			}
			pool = append(pool[:idx], pool[idx+1:]...)
			poly = append(poly, next)
			frontier = next
		}

		if closed {
			result.Polygons = append(result.Polygons, poly)
		} else {
			result.Open += len(poly) - 1
		}
	}
	return result
}
