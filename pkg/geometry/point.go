package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Point is a labeled position in the 2D plane
type Point struct {
	geom.Coord
	Name string
}

// NewPoint creates a new labeled point
func NewPoint(name string, x, y float64) Point {
	return Point{Coord: geom.Coord{X: x, Y: y}, Name: name}
}

// Radians converts an angle in degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Degrees converts an angle in radians to degrees
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// RotateAbout rotates a position counter-clockwise around a pivot by the
// given angle in radians
func RotateAbout(p, pivot geom.Coord, radians float64) geom.Coord {
	sin, cos := math.Sincos(radians)
	r := p.Minus(pivot)
	return pivot.Plus(geom.Coord{
		X: r.X*cos - r.Y*sin,
		Y: r.X*sin + r.Y*cos,
	})
}

// InteriorAngle returns the angle in radians at vertex v between the rays
// toward p and q
func InteriorAngle(v, p, q geom.Coord) float64 {
	d := geom.DotProduct(p.Minus(v).Unit(), q.Minus(v).Unit())
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}
