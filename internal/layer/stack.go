package layer

// Layer is one planar cross-section: a 0-based index bottom-up, its Z
// height, and its islands sorted by outer area descending. A layer with
// zero islands is empty: below the mesh, above it, or an internal gap.
type Layer struct {
	Index   int
	Z       float64
	Islands []Island
}

// Empty reports whether the layer contains no islands.
func (l Layer) Empty() bool {
	return len(l.Islands) == 0
}

// Warning describes a soft per-layer failure (open contour, coplanar
// triangle skip, degenerate polygon) that dropped content from a layer
// without failing the slice.
type Warning struct {
	Layer int
	Msg   string
}

// Stack is the ordered sequence of Layers produced by slicing, together
// with every soft warning collected along the way. Stack.Layers is always
// strictly ascending in Index and Z.
type Stack struct {
	Layers   []Layer
	Warnings []Warning
}
