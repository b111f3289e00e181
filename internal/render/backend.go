// Package render provides drawing backends for 2D scatter-and-line
// diagrams: colored point sets plus lines in slope/intercept or
// vertical form.
package render

import "image/color"

type Marker int

const (
	// MarkerPixel is a single small dot, used for dense background
	// fields.
	MarkerPixel Marker = iota
	// MarkerDisc is a filled circle for data samples.
	MarkerDisc
	// MarkerRing is an open circle, used to flag support vectors on top
	// of their sample disc.
	MarkerRing
)

type Point struct {
	X, Y float64
}

// PointSet is one named layer of equally styled points.
type PointSet struct {
	Name   string
	Points []Point
	Color  color.RGBA
	Marker Marker
	Size   int
}

// Line is a straight line across the whole drawing area. Vertical lines
// carry their x position in X1 since the slope form cannot express
// them.
type Line struct {
	Name      string
	Vertical  bool
	Slope     float64
	Intercept float64
	X1        float64
	Color     color.RGBA
	Dashed    bool
}

// Backend accumulates layers and writes the finished diagram on Save.
// Layers are drawn in the order they were added.
type Backend interface {
	AddPoints(ps PointSet)
	AddLine(l Line)
	Save(path string) error
}
