package visualize

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rbelina/svmviz/internal/dataset"
)

// Grid is a uniform n-by-n sampling of the bounding box of a point set,
// inclusive of both ends on each axis. Points are stored axis-1-major:
// for each of the n axis-1 values, all n axis-2 values in order.
type Grid struct {
	N      int
	Axis1  []decimal.Decimal
	Axis2  []decimal.Decimal
	Points []dataset.Point2D
}

// BuildGrid computes the per-axis bounding range of the input points
// and crosses n evenly spaced values per axis. A zero-width axis is
// valid and yields n repeated values.
func BuildGrid(points []dataset.Point2D, n int) (*Grid, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: cannot build grid over empty point set", dataset.ErrInput)
	}
	if n <= 1 {
		return nil, fmt.Errorf("%w: grid resolution must be > 1, got %d", dataset.ErrInput, n)
	}

	min1, max1 := points[0].X1, points[0].X1
	min2, max2 := points[0].X2, points[0].X2
	for _, p := range points[1:] {
		if p.X1.LessThan(min1) {
			min1 = p.X1
		}
		if p.X1.GreaterThan(max1) {
			max1 = p.X1
		}
		if p.X2.LessThan(min2) {
			min2 = p.X2
		}
		if p.X2.GreaterThan(max2) {
			max2 = p.X2
		}
	}

	grid := &Grid{
		N:      n,
		Axis1:  linspace(min1, max1, n),
		Axis2:  linspace(min2, max2, n),
		Points: make([]dataset.Point2D, 0, n*n),
	}

	for _, x1 := range grid.Axis1 {
		for _, x2 := range grid.Axis2 {
			grid.Points = append(grid.Points, dataset.Point2D{X1: x1, X2: x2})
		}
	}

	return grid, nil
}

// linspace returns n evenly spaced values from min to max. Both
// endpoints are emitted exactly; intermediate values come from
// min + i*step with step = (max-min)/(n-1).
func linspace(min, max decimal.Decimal, n int) []decimal.Decimal {
	values := make([]decimal.Decimal, n)
	step := max.Sub(min).Div(decimal.NewFromInt(int64(n - 1)))

	values[0] = min
	for i := 1; i < n-1; i++ {
		values[i] = min.Add(step.Mul(decimal.NewFromInt(int64(i))))
	}
	values[n-1] = max

	return values
}
