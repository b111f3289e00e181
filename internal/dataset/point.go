package dataset

import (
	"github.com/shopspring/decimal"
)

// Point2D is a single observation in the two-dimensional feature space.
// Coordinates are never modified after construction.
type Point2D struct {
	X1 decimal.Decimal
	X2 decimal.Decimal
}

func NewPoint(x1, x2 float64) Point2D {
	return Point2D{
		X1: decimal.NewFromFloat(x1),
		X2: decimal.NewFromFloat(x2),
	}
}

func (p Point2D) Floats() (float64, float64) {
	x1, _ := p.X1.Float64()
	x2, _ := p.X2.Float64()
	return x1, x2
}

// Sample pairs a point with its binary class label (-1 or +1).
type Sample struct {
	Point Point2D
	Label int
}

func ExtractClasses(samples []Sample) []int {
	classMap := make(map[int]bool)
	for _, s := range samples {
		classMap[s.Label] = true
	}

	classes := make([]int, 0, len(classMap))
	for class := range classMap {
		classes = append(classes, class)
	}

	return classes
}

func Points(samples []Sample) []Point2D {
	points := make([]Point2D, len(samples))
	for i, s := range samples {
		points[i] = s.Point
	}
	return points
}

func Labels(samples []Sample) []int {
	labels := make([]int, len(samples))
	for i, s := range samples {
		labels[i] = s.Label
	}
	return labels
}
