package layer

import (
	"sort"

	"github.com/krasin/goslicer/internal/geom"
)

// Island is one outer contour plus zero or more holes. After Classify
// returns, Outer is always wound counter-clockwise and every hole is
// wound clockwise, the convention downstream path planners expect.
type Island struct {
	Outer geom.Polygon
	Holes []geom.Polygon
}

// Classify implements §4.4: discard degenerate polygons, compute
// containment depth for the rest, split even/odd depth into outers/holes,
// assign each hole to its minimum-enclosing-area outer, canonicalise
// winding and sort the resulting islands by outer area descending.
//
// Ties in containment depth (a self-touching contour sharing a vertex
// with another without crossing it) are resolved by the iteration order
// of polys: whichever candidate container appears first is picked
// when their areas are exactly equal. This
// tie-break is deliberately simple and documented rather than guessed at
// runtime; see DESIGN.md.
func Classify(polys []geom.Polygon) []Island {
	var kept []geom.Polygon
	for _, p := range polys {
		if !p.IsDegenerate() {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	depth := make([]int, len(kept))
	interior := make([]geom.Vec2, len(kept))
	for i, p := range kept {
		interior[i] = p.RepresentativeInteriorPoint()
	}
	for i := range kept {
		for j := range kept {
			if i == j {
				continue
			}
			if kept[j].ContainsPoint(interior[i]) {
				depth[i]++
			}
		}
	}

	var outerIdx, holeIdx []int
	for i, d := range depth {
		if d%2 == 0 {
			outerIdx = append(outerIdx, i)
		} else {
			holeIdx = append(holeIdx, i)
		}
	}

	islands := make(map[int]*Island, len(outerIdx))
	order := make([]int, 0, len(outerIdx))
	for _, oi := range outerIdx {
		outer := kept[oi]
		if outer.IsClockwise() {
			outer = outer.Reversed()
		}
		islands[oi] = &Island{Outer: outer}
		order = append(order, oi)
	}

	for _, hi := range holeIdx {
		best := -1
		bestArea := 0.0
		for _, oi := range outerIdx {
			if !kept[oi].ContainsPoint(interior[hi]) {
				continue
			}
			area := kept[oi].Area()
			if best == -1 || area < bestArea {
				best = oi
				bestArea = area
			}
		}
		if best == -1 {
			// No enclosing outer found (shouldn't happen for odd depth,
			// but guards against a degenerate/self-touching edge case);
			// treat the hole as its own outer rather than dropping data.
			hole := kept[hi]
			if hole.IsClockwise() {
				hole = hole.Reversed()
			}
			islands[hi] = &Island{Outer: hole}
			order = append(order, hi)
			continue
		}
		hole := kept[hi]
		if !hole.IsClockwise() {
			hole = hole.Reversed()
		}
		islands[best].Holes = append(islands[best].Holes, hole)
	}

	result := make([]Island, 0, len(order))
	for _, idx := range order {
		result = append(result, *islands[idx])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Outer.Area() > result[j].Outer.Area()
	})
	return result
}
