package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gotri/pkg/analysis"
	"github.com/philipparndt/gotri/pkg/triangle"
)

func printSummary(vs triangle.VertexSet) {
	s := analysis.Summarize(vs)
	names := vs.Names()

	fmt.Println("\nVertices")
	fmt.Println("========")
	for _, p := range vs {
		fmt.Printf("%s: %s\n", p.Name, analysis.FormatCoord(p.Coord))
	}

	fmt.Println("\nSides")
	fmt.Println("=====")
	for i := range s.Sides {
		fmt.Printf("%s: %s\n", vs.SideName(i), analysis.FormatMeasurement(s.Sides[i], ""))
	}

	fmt.Println("\nAngles")
	fmt.Println("======")
	for i, name := range names {
		fmt.Printf("%s: %s\n", name, analysis.FormatMeasurement(s.Angles[i], "degrees"))
	}

	fmt.Println("\nProperties")
	fmt.Println("==========")
	fmt.Printf("Perimeter: %s\n", analysis.FormatMeasurement(s.Perimeter, ""))
	fmt.Printf("Area: %s\n", analysis.FormatMeasurement(s.Area, "sq units"))
	fmt.Printf("Centroid: %s\n", analysis.FormatCoord(s.Centroid))
	fmt.Printf("Circumcircle: %s radius %s\n", analysis.FormatCoord(s.Circumcircle.Center), analysis.FormatMeasurement(s.Circumcircle.Radius, ""))
	fmt.Printf("Bounds: %s to %s\n", analysis.FormatCoord(s.Bounds.Min), analysis.FormatCoord(s.Bounds.Max))
	fmt.Printf("Winding: %s\n", windingLabel(s.Orientation))
	fmt.Printf("Classification: %s, %s\n", s.SideKind, s.AngleKind)
}

func windingLabel(orientation int) string {
	if orientation < 0 {
		return "clockwise"
	}
	return "counter-clockwise"
}

func printVertices(label string, vs triangle.VertexSet) {
	fmt.Println(label)
	for _, p := range vs {
		fmt.Printf("  %s: %s\n", p.Name, analysis.FormatCoord(p.Coord))
	}
}

func parseFloatArg(name, value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid %s %q\n", name, value)
		os.Exit(1)
	}
	return f
}

func parsePair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two comma-separated values, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseTriple(s string) (float64, float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected three comma-separated values, got %q", s)
	}
	var values [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, 0, 0, err
		}
		values[i] = value
	}
	return values[0], values[1], values[2], nil
}

// baseTriangle builds the starting triangle for commands that accept an
// optional --sss flag, falling back to the default placement.
func baseTriangle(sss, name string) *triangle.Triangle {
	if sss == "" {
		tri, err := triangle.New(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating triangle: %v\n", err)
			os.Exit(1)
		}
		return tri
	}

	a, b, c, err := parseTriple(sss)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing side lengths: %v\n", err)
		os.Exit(1)
	}
	tri, err := triangle.FromSSS(a, b, c, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error constructing triangle: %v\n", err)
		os.Exit(1)
	}
	return tri
}
