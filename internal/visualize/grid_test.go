package visualize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbelina/svmviz/internal/dataset"
)

func TestBuildGridCoversBoundingBox(t *testing.T) {
	points := []dataset.Point2D{
		dataset.NewPoint(-2, 1),
		dataset.NewPoint(3, -4),
		dataset.NewPoint(0.5, 6),
	}

	grid, err := BuildGrid(points, 7)
	require.NoError(t, err)

	assert.Equal(t, 49, len(grid.Points))
	assert.Equal(t, 7, len(grid.Axis1))
	assert.Equal(t, 7, len(grid.Axis2))

	assert.True(t, grid.Axis1[0].Equal(decimal.NewFromFloat(-2)))
	assert.True(t, grid.Axis1[6].Equal(decimal.NewFromFloat(3)))
	assert.True(t, grid.Axis2[0].Equal(decimal.NewFromFloat(-4)))
	assert.True(t, grid.Axis2[6].Equal(decimal.NewFromFloat(6)))

	// Grid extremes match the input extremes exactly.
	min1, max1 := grid.Points[0].X1, grid.Points[0].X1
	min2, max2 := grid.Points[0].X2, grid.Points[0].X2
	for _, p := range grid.Points {
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
	assert.True(t, min1.Equal(decimal.NewFromFloat(-2)))
	assert.True(t, max1.Equal(decimal.NewFromFloat(3)))
	assert.True(t, min2.Equal(decimal.NewFromFloat(-4)))
	assert.True(t, max2.Equal(decimal.NewFromFloat(6)))
}

func TestBuildGridAxisOneMajorOrder(t *testing.T) {
	points := []dataset.Point2D{
		dataset.NewPoint(0, 0),
		dataset.NewPoint(2, 4),
	}

	grid, err := BuildGrid(points, 3)
	require.NoError(t, err)
	require.Equal(t, 9, len(grid.Points))

	// For each axis-1 value, all axis-2 values in order.
	want := [][2]string{
		{"0", "0"}, {"0", "2"}, {"0", "4"},
		{"1", "0"}, {"1", "2"}, {"1", "4"},
		{"2", "0"}, {"2", "2"}, {"2", "4"},
	}
	for i, p := range grid.Points {
		assert.Equal(t, want[i][0], p.X1.String(), "point %d x1", i)
		assert.Equal(t, want[i][1], p.X2.String(), "point %d x2", i)
	}
}

func TestBuildGridDeterministic(t *testing.T) {
	points := []dataset.Point2D{
		dataset.NewPoint(-1.5, 0.25),
		dataset.NewPoint(2.75, 3),
		dataset.NewPoint(0, -1),
	}

	first, err := BuildGrid(points, 21)
	require.NoError(t, err)
	second, err := BuildGrid(points, 21)
	require.NoError(t, err)

	require.Equal(t, len(first.Points), len(second.Points))
	for i := range first.Points {
		assert.True(t, first.Points[i].X1.Equal(second.Points[i].X1))
		assert.True(t, first.Points[i].X2.Equal(second.Points[i].X2))
	}
}

func TestBuildGridZeroWidthAxis(t *testing.T) {
	points := []dataset.Point2D{
		dataset.NewPoint(5, 1),
		dataset.NewPoint(5, 2),
		dataset.NewPoint(5, 3),
	}

	grid, err := BuildGrid(points, 4)
	require.NoError(t, err)

	assert.Equal(t, 16, len(grid.Points))
	for _, v := range grid.Axis1 {
		assert.True(t, v.Equal(decimal.NewFromInt(5)))
	}
}

func TestBuildGridTwoByTwoCorners(t *testing.T) {
	points := []dataset.Point2D{
		dataset.NewPoint(-1, -2),
		dataset.NewPoint(3, 4),
	}

	grid, err := BuildGrid(points, 2)
	require.NoError(t, err)
	require.Equal(t, 4, len(grid.Points))

	want := [][2]string{
		{"-1", "-2"}, {"-1", "4"},
		{"3", "-2"}, {"3", "4"},
	}
	for i, p := range grid.Points {
		assert.Equal(t, want[i][0], p.X1.String())
		assert.Equal(t, want[i][1], p.X2.String())
	}
}

func TestBuildGridRejectsBadInput(t *testing.T) {
	_, err := BuildGrid(nil, 10)
	assert.ErrorIs(t, err, dataset.ErrInput)

	_, err = BuildGrid([]dataset.Point2D{dataset.NewPoint(0, 0)}, 1)
	assert.ErrorIs(t, err, dataset.ErrInput)

	_, err = BuildGrid([]dataset.Point2D{dataset.NewPoint(0, 0)}, 0)
	assert.ErrorIs(t, err, dataset.ErrInput)
}
