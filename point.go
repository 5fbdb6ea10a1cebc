package main

import "fmt"

// Point is a canvas coordinate in logical units. Values are copied, never
// shared, so a recorded Point cannot change after the fact.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}
