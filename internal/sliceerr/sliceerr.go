// Package sliceerr defines the fatal error kinds the slicing pipeline can
// raise: InvalidGeometry, InvalidConfig and InternalInconsistency. Soft,
// per-layer failures (open contours, coplanar skips, degenerate polygons)
// are not errors at all: they're warnings attached to layer.Stack.
package sliceerr

import "fmt"

// Kind identifies which of the three fatal error categories occurred.
type Kind int

const (
	// InvalidGeometry: a vertex contains NaN/Inf, or a triangle references
	// an out-of-range vertex index.
	InvalidGeometry Kind = iota
	// InvalidConfig: layer_height or first_layer_height is <= 0.
	InvalidConfig
	// InternalInconsistency: a stitched polygon failed its closure
	// invariant after the builder claimed success, indicating a bug in
	// this module, not bad input.
	InternalInconsistency
)

func (k Kind) String() string {
	switch k {
	case InvalidGeometry:
		return "InvalidGeometry"
	case InvalidConfig:
		return "InvalidConfig"
	case InternalInconsistency:
		return "InternalInconsistency"
	default:
		return "Unknown"
	}
}

// Error is the error type raised for every fatal condition in the
// pipeline. Layer is -1 when the error is not attributable to a specific
// layer (e.g. config validation, which happens before any layer exists).
type Error struct {
	Kind   Kind
	Layer  int
	Detail string
}

func (e *Error) Error() string {
	if e.Layer >= 0 {
		return fmt.Sprintf("%s: layer %d: %s", e.Kind, e.Layer, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// New builds an Error not attributable to a specific layer.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Layer: -1, Detail: detail}
}

// NewAtLayer builds an Error attributable to a specific layer index.
func NewAtLayer(kind Kind, layerIndex int, detail string) *Error {
	return &Error{Kind: kind, Layer: layerIndex, Detail: detail}
}

// Is reports whether err is a *Error of the given Kind, supporting
// errors.Is(err, sliceerr.InvalidConfig) style checks via a thin wrapper
// since Kind itself is not an error.
func Is(err error, kind Kind) bool {
	se, ok := err.(*Error)
	return ok && se.Kind == kind
}
