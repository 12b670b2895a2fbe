package analysis

import (
	"fmt"

	"github.com/jbeda/geom"
	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/triangle"
)

// Summary contains the derived measurements of a triangle
type Summary struct {
	Vertices     triangle.VertexSet
	Sides        [3]float64
	Angles       [3]float64
	Perimeter    float64
	Area         float64
	Centroid     geom.Coord
	Circumcircle geometry.Circle
	Bounds       geom.Rect
	Orientation  int
	SideKind     Kind
	AngleKind    AngleKind
}

// Summarize computes the full set of measurements for a vertex set
func Summarize(vs triangle.VertexSet) *Summary {
	// A set that satisfies the triangle inequality is never collinear,
	// so the circumcircle exists
	circle, _ := geometry.CircleThrough(vs[0].Coord, vs[1].Coord, vs[2].Coord)

	return &Summary{
		Vertices:     vs,
		Sides:        vs.SideLengths(),
		Angles:       vs.Angles(),
		Perimeter:    vs.Perimeter(),
		Area:         vs.Area(),
		Centroid:     vs.Centroid(),
		Circumcircle: circle,
		Bounds:       vs.Bounds(),
		Orientation:  vs.Orientation(),
		SideKind:     ClassifySides(vs),
		AngleKind:    ClassifyAngles(vs),
	}
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatCoord formats a 2D coordinate
func FormatCoord(c geom.Coord) string {
	return fmt.Sprintf("(%.6f, %.6f)", c.X, c.Y)
}
