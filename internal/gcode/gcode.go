// Package gcode emits a minimal, comment-and-travel-only G-code program
// from a sliced layer.Stack (§4.8). Perimeter offsetting, infill, travel
// ordering, retraction and extrusion-volume computation are downstream
// toolpath-planning concerns this package deliberately does not implement.
package gcode

import (
	"fmt"
	"io"

	"github.com/krasin/goslicer/internal/config"
	"github.com/krasin/goslicer/internal/layer"
)

// Emit walks stack.Layers in order and writes one block per layer: a
// layer-header comment, a Z travel move, and per-island comments (outer
// first, then holes) with a travel move to the outer's first vertex.
func Emit(w io.Writer, stack *layer.Stack, profile *config.Profile) error {
	if _, err := fmt.Fprintf(w, "; generated by goslicer\n; layer_height=%g first_layer_height=%g\n",
		profile.LayerHeight, profile.FirstLayerHeight); err != nil {
		return err
	}

	for _, l := range stack.Layers {
		if err := emitLayer(w, l); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "; end of program")
	return err
}

func emitLayer(w io.Writer, l layer.Layer) error {
	if _, err := fmt.Fprintf(w, ";LAYER:%d Z:%g\n", l.Index, l.Z); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "G0 Z%.4f\n", l.Z); err != nil {
		return err
	}
	if l.Empty() {
		_, err := fmt.Fprintln(w, "; layer is empty, nothing to draw")
		return err
	}
	for _, island := range l.Islands {
		if err := emitIsland(w, island); err != nil {
			return err
		}
	}
	return nil
}

func emitIsland(w io.Writer, isl layer.Island) error {
	if _, err := fmt.Fprintf(w, ";ISLAND outer=%d holes=%d\n", len(isl.Outer), len(isl.Holes)); err != nil {
		return err
	}
	if len(isl.Outer) == 0 {
		return nil
	}
	start := isl.Outer[0]
	_, err := fmt.Fprintf(w, "G0 X%.4f Y%.4f\n", start.X, start.Y)
	return err
}
