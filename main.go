// Command goslicer converts an STL surface mesh into a stack of planar
// cross-section layers and emits a G-code program driven by those layers.
// The geometric slicing pipeline lives under internal/; this file is the
// thin cobra-based command dispatch, in the same flat, flag-driven style
// as the tool it grew from.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/krasin/goslicer/internal/config"
	"github.com/krasin/goslicer/internal/gcode"
	"github.com/krasin/goslicer/internal/geom"
	"github.com/krasin/goslicer/internal/slicer"
	"github.com/krasin/goslicer/internal/stlio"
)

var (
	outPath     string
	profilePath string
	planeZ      float64
	verbose     bool
)

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func openIn(files []string) (string, io.ReadCloser, error) {
	if len(files) == 0 {
		return "", os.Stdin, nil
	}
	if len(files) > 1 {
		return "", nil, fmt.Errorf("multiple input files are not supported")
	}
	f, err := os.Open(files[0])
	return files[0], f, err
}

func openOut(path string) (io.WriteCloser, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

func info(cmd *cobra.Command, args []string) {
	name, r, err := openIn(args)
	if err != nil {
		fail(err)
	}
	defer r.Close()
	mesh, err := stlio.Load(r)
	if err != nil {
		fail(fmt.Sprintf("failed to read STL file %q: %v", name, err))
	}
	fmt.Printf("File: %s\n", name)
	fmt.Printf("Vertices: %d\n", len(mesh.Vertices))
	fmt.Printf("Triangles: %d\n", len(mesh.Triangles))
	fmt.Printf("Bounding box: %+v - %+v\n", mesh.Bounds.Min, mesh.Bounds.Max)
}

func sliceToGCode(cmd *cobra.Command, args []string) {
	name, r, err := openIn(args)
	if err != nil {
		fail(err)
	}
	defer r.Close()

	if profilePath == "" {
		fail("--profile is required")
	}
	pf, err := os.Open(profilePath)
	if err != nil {
		fail("failed to open profile:", err)
	}
	defer pf.Close()
	profile, err := config.Load(pf)
	if err != nil {
		fail("failed to parse profile:", err)
	}

	mesh, err := stlio.Load(r)
	if err != nil {
		fail(fmt.Sprintf("failed to read STL file %q: %v", name, err))
	}

	stack, err := slicer.Slice(mesh, profile)
	if err != nil {
		fail("slicing failed:", err)
	}

	w, err := openOut(outPath)
	if err != nil {
		fail(err)
	}
	defer w.Close()

	if err := gcode.Emit(w, stack, profile); err != nil {
		fail("failed to write G-code:", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%d layer(s), %d warning(s)\n", len(stack.Layers), len(stack.Warnings))
	}
}

// plane renders a single horizontal cross-section to SVG; this used to
// be called "slice" before that name was taken over to mean "produce
// the full layer stack".
func plane(cmd *cobra.Command, args []string) {
	_, r, err := openIn(args)
	if err != nil {
		fail(err)
	}
	defer r.Close()
	w, err := openOut(outPath)
	if err != nil {
		fail(err)
	}
	defer w.Close()

	mesh, err := stlio.Load(r)
	if err != nil {
		fail("failed to read STL file:", err)
	}

	var segs [][2]geom.Vec2
	for _, tri := range mesh.Triangles {
		verts := tri.Vertices(mesh)
		if seg, ok := geom.IntersectTrianglePlane(verts, planeZ); ok {
			segs = append(segs, [2]geom.Vec2{seg.A, seg.B})
		}
	}

	min, max := mesh.Bounds.Min, mesh.Bounds.Max
	pmm := func(v float64) int { return int(v * 100) }
	width := pmm(max.X - min.X)
	height := pmm(max.Y - min.Y)

	fmt.Fprintln(w, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`)
	fmt.Fprintf(w, `<svg width="%fmm" height="%fmm" version="1.1" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`,
		float64(width)/100, float64(height)/100, width, height)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `<g fill="none" stroke="black" stroke-width="10">`)

	xx := func(v float64) int { return pmm(v - min.X) }
	yy := func(v float64) int { return pmm(v - min.Y) }
	for _, seg := range segs {
		fmt.Fprintf(w, "<path d='M%d,%d L%d,%d' />\n", xx(seg[0].X), yy(seg[0].Y), xx(seg[1].X), yy(seg[1].Y))
	}

	fmt.Fprintln(w, "</g>")
	fmt.Fprintln(w, "</svg>")
}

func scale(cmd *cobra.Command, args []string) {
	_, r, err := openIn(args)
	if err != nil {
		fail(err)
	}
	defer r.Close()

	factor, err := cmd.Flags().GetFloat64("x")
	if err != nil {
		fail(err)
	}

	mesh, err := stlio.Load(r)
	if err != nil {
		fail("failed to read STL file:", err)
	}
	for i := range mesh.Vertices {
		mesh.Vertices[i] = mesh.Vertices[i].Scale(factor)
	}

	w, err := openOut(outPath)
	if err != nil {
		fail(err)
	}
	defer w.Close()
	if err := stlio.Save(w, mesh); err != nil {
		fail("failed to write scaled STL:", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "scaled %d vertices by %g\n", len(mesh.Vertices), factor)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "goslicer",
		Short: "Slice STL meshes into G-code",
		Long:  "Command-line STL-to-G-code slicer",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("goslicer -- slice an STL mesh into G-code.")
			cmd.Usage()
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info [STL file]",
		Short: "STL file info",
		Long: `info displays mesh metrics, such as the number of triangles, bounding box, etc.
If no STL file is specified, it will read from stdin`,
		Run: info,
	}
	rootCmd.AddCommand(infoCmd)

	sliceCmd := &cobra.Command{
		Use:   "slice [STL file]",
		Short: "Slice a mesh into layers and emit G-code",
		Long: `slice derives the Z schedule from --profile, intersects every triangle
against each plane, stitches and classifies the resulting contours into
islands, and writes a G-code program walking the resulting layer stack.
If no STL file is specified, it will read from stdin.`,
		Run: sliceToGCode,
	}
	sliceCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output G-code file. By default, it's stdout.")
	sliceCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Print profile YAML file (required).")
	sliceCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print layer/warning counts to stderr.")
	rootCmd.AddCommand(sliceCmd)

	planeCmd := &cobra.Command{
		Use:   "plane [STL file]",
		Short: "Render a single plane cross-section to SVG",
		Long: `plane slices a mesh with one horizontal plane at the given Z and renders
the resulting segments to SVG graphics. If no STL file is specified, it
will read from stdin.`,
		Run: plane,
	}
	planeCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output SVG file. By default, it's stdout.")
	planeCmd.Flags().Float64VarP(&planeZ, "z", "z", 0, "Z height to slice at.")
	rootCmd.AddCommand(planeCmd)

	scaleCmd := &cobra.Command{
		Use:   "scale [STL file]",
		Short: "Scale mesh vertices",
		Long:  `scale multiplies all mesh vertex coordinates by the specified amount.`,
		Run:   scale,
	}
	scaleCmd.Flags().Float64P("x", "x", 1, "Scale factor")
	scaleCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output STL file. By default, it's stdout.")
	scaleCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a summary to stderr.")
	rootCmd.AddCommand(scaleCmd)

	rootCmd.Execute()
}
