// Package slicer implements the orchestrator of §4.5: it derives the Z
// schedule from a Mesh and PrintProfile, drives the plane intersector,
// layer builder and island classifier in parallel across layers, and
// returns an index-ordered layer.Stack.
package slicer

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/krasin/goslicer/internal/config"
	"github.com/krasin/goslicer/internal/geom"
	"github.com/krasin/goslicer/internal/layer"
	"github.com/krasin/goslicer/internal/sliceerr"
)

// Slice runs the full pipeline described in spec §4.5 and returns the
// resulting layer.Stack. The Mesh and Profile are borrowed for the
// duration of the call; the returned Stack exclusively owns its Layers,
// Islands and Polygons.
func Slice(mesh *geom.Mesh, profile *config.Profile) (*layer.Stack, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := validateMesh(mesh); err != nil {
		return nil, err
	}

	zs := zSchedule(mesh.Bounds.Min.Z, mesh.Bounds.Max.Z, profile.LayerHeight, profile.FirstLayerHeight)
	if len(zs) == 0 {
		return &layer.Stack{}, nil
	}

	layers := make([]layer.Layer, len(zs))
	warningsPerLayer := make([][]layer.Warning, len(zs))
	errsPerLayer := make([]error, len(zs))

	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	for i, z := range zs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, z float64) {
			defer wg.Done()
			defer func() { <-sem }()
			l, warnings, err := sliceLayer(mesh, i, z)
			layers[i] = l
			warningsPerLayer[i] = warnings
			errsPerLayer[i] = err
		}(i, z)
	}
	wg.Wait()

	for _, err := range errsPerLayer {
		if err != nil {
			return nil, err
		}
	}

	stack := &layer.Stack{Layers: layers}
	for _, ws := range warningsPerLayer {
		stack.Warnings = append(stack.Warnings, ws...)
	}
	for _, w := range stack.Warnings {
		slog.Warn("slice: dropped content", "layer", w.Layer, "detail", w.Msg)
	}
	return stack, nil
}

// validateMesh rejects NaN/Inf vertices and out-of-range triangle indices
// before any worker is dispatched, per §4.5's failure semantics.
func validateMesh(mesh *geom.Mesh) error {
	for i, v := range mesh.Vertices {
		if !v.IsFinite() {
			return sliceerr.New(sliceerr.InvalidGeometry, fmt.Sprintf("vertex %d is not finite: %+v", i, v))
		}
	}
	for i, t := range mesh.Triangles {
		for _, idx := range t.V {
			if idx < 0 || idx >= len(mesh.Vertices) {
				return sliceerr.New(sliceerr.InvalidGeometry, fmt.Sprintf("triangle %d references out-of-range vertex %d", i, idx))
			}
		}
	}
	return nil
}

// zSchedule derives the Z sample heights per §4.5: layer 0 at
// zmin + h1/2, layer i>=1 at zmin + h1 + (i - 1/2)*h, continuing until
// the slab upper edge of the last layer reaches zmax (within Epsilon).
func zSchedule(zmin, zmax, h, h1 float64) []float64 {
	if zmax <= zmin {
		return nil
	}
	var zs []float64
	z0 := zmin + h1/2
	zs = append(zs, z0)
	if z0+h1/2 >= zmax-geom.Epsilon {
		return zs
	}
	for i := 1; ; i++ {
		zi := zmin + h1 + (float64(i)-0.5)*h
		zs = append(zs, zi)
		if zi+h/2 >= zmax-geom.Epsilon {
			break
		}
	}
	return zs
}

// sliceLayer runs stages 2-4 of the pipeline for a single Z height.
func sliceLayer(mesh *geom.Mesh, index int, z float64) (layer.Layer, []layer.Warning, error) {
	var segments []geom.Segment2
	coplanar, degenerate := 0, 0
	for _, tri := range mesh.Triangles {
		lo, hi := tri.ZRange(mesh)
		if hi < z-geom.Epsilon || lo > z+geom.Epsilon {
			continue
		}
		if lo >= z-geom.Epsilon && hi <= z+geom.Epsilon {
			coplanar++
			continue
		}
		verts := tri.Vertices(mesh)
		if seg, ok := geom.IntersectTrianglePlane(verts, z); ok {
			segments = append(segments, seg)
		}
	}

	stitched := layer.Stitch(segments)
	var warnings []layer.Warning
	if stitched.Open > 0 {
		warnings = append(warnings, layer.Warning{
			Layer: index,
			Msg:   fmt.Sprintf("%d segment(s) left in open contours, discarded", stitched.Open),
		})
	}
	for _, p := range stitched.Polygons {
		if !p.IsClosed() {
			// The builder only ever claims closure for polygons that are
			// actually closed; reaching this means a bug in the builder,
			// not a tolerable defect in the input mesh.
			return layer.Layer{}, nil, sliceerr.NewAtLayer(sliceerr.InternalInconsistency, index, "stitched polygon failed closure invariant")
		}
		if p.IsDegenerate() {
			degenerate++
		}
	}
	if coplanar > 0 || degenerate > 0 {
		warnings = append(warnings, layer.Warning{
			Layer: index,
			Msg:   fmt.Sprintf("%d coplanar triangle(s) skipped, %d degenerate polygon(s) dropped", coplanar, degenerate),
		})
	}

	islands := layer.Classify(stitched.Polygons)
	return layer.Layer{Index: index, Z: z, Islands: islands}, warnings, nil
}
