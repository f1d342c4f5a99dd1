package layer

import (
	"testing"

	"github.com/krasin/goslicer/internal/geom"
)

func ccwSquare(cx, cy, side float64) geom.Polygon {
	h := side / 2
	return geom.Polygon{
		{X: cx - h, Y: cy - h},
		{X: cx + h, Y: cy - h},
		{X: cx + h, Y: cy + h},
		{X: cx - h, Y: cy + h},
		{X: cx - h, Y: cy - h},
	}
}

func TestClassifySingleOuterNoHoles(t *testing.T) {
	polys := []geom.Polygon{ccwSquare(0, 0, 10)}
	islands := Classify(polys)
	if len(islands) != 1 {
		t.Fatalf("expected 1 island, got %d", len(islands))
	}
	if len(islands[0].Holes) != 0 {
		t.Fatalf("expected no holes, got %d", len(islands[0].Holes))
	}
	if islands[0].Outer.IsClockwise() {
		t.Fatal("outer must be wound counter-clockwise")
	}
}

func TestClassifyOuterWithHole(t *testing.T) {
	outer := ccwSquare(0, 0, 10)
	hole := ccwSquare(0, 0, 4) // same winding as outer; Classify must flip it
	islands := Classify([]geom.Polygon{outer, hole})
	if len(islands) != 1 {
		t.Fatalf("expected 1 island, got %d", len(islands))
	}
	isl := islands[0]
	if len(isl.Holes) != 1 {
		t.Fatalf("expected 1 hole, got %d", len(isl.Holes))
	}
	if isl.Outer.IsClockwise() {
		t.Fatal("outer must be CCW")
	}
	if !isl.Holes[0].IsClockwise() {
		t.Fatal("hole must be CW")
	}
}

func TestClassifyHoleAssignedToMinimumEnclosingOuter(t *testing.T) {
	// Nested squares: big(20) > mid(10) > hole(4). The hole sits inside
	// both, but must attach to the smaller (mid) outer, not the big one.
	big := ccwSquare(0, 0, 20)
	mid := ccwSquare(0, 0, 10)
	hole := ccwSquare(0, 0, 4)
	islands := Classify([]geom.Polygon{big, mid, hole})

	// depth(hole)=2 (inside both big and mid) -> even -> hole is itself an
	// outer at this depth. depth(mid)=1 (inside big) -> odd -> mid is a
	// hole of big. depth(big)=0 -> outer.
	// So islands: {Outer: big, Holes: [mid]} and {Outer: hole, Holes: []}.
	if len(islands) != 2 {
		t.Fatalf("expected 2 islands, got %d", len(islands))
	}
	foundBigWithMidHole := false
	foundHoleAsOuter := false
	for _, isl := range islands {
		if isl.Outer.Area() > 300 && len(isl.Holes) == 1 {
			foundBigWithMidHole = true
		}
		if isl.Outer.Area() < 20 && len(isl.Holes) == 0 {
			foundHoleAsOuter = true
		}
	}
	if !foundBigWithMidHole {
		t.Fatal("expected the big square to carry the mid square as its hole")
	}
	if !foundHoleAsOuter {
		t.Fatal("expected the innermost square to stand as its own outer island")
	}
}

func TestClassifyDegeneratePolygonDropped(t *testing.T) {
	degenerate := geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	islands := Classify([]geom.Polygon{degenerate})
	if len(islands) != 0 {
		t.Fatalf("expected degenerate polygon to be dropped, got %d islands", len(islands))
	}
}

func TestClassifySortedByAreaDescending(t *testing.T) {
	small := ccwSquare(0, 0, 2)
	large := ccwSquare(100, 100, 20)
	islands := Classify([]geom.Polygon{small, large})
	if len(islands) != 2 {
		t.Fatalf("expected 2 islands, got %d", len(islands))
	}
	if islands[0].Outer.Area() < islands[1].Outer.Area() {
		t.Fatal("islands must be sorted by outer area descending")
	}
}
