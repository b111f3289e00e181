package visualize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbelina/svmviz/internal/dataset"
)

// stubLinear is a hand-wired linear classifier for exercising the
// visualizer without training anything.
type stubLinear struct {
	w1, w2, b float64
	svs       []dataset.Sample
	coefs     []float64

	predictErr error
	predicted  []dataset.Point2D
}

func (s *stubLinear) Predict(p dataset.Point2D) (int, error) {
	if s.predictErr != nil {
		return 0, s.predictErr
	}
	s.predicted = append(s.predicted, p)
	x1, x2 := p.Floats()
	if s.w1*x1+s.w2*x2-s.b >= 0 {
		return 1, nil
	}
	return -1, nil
}

func (s *stubLinear) Weights() (float64, float64) { return s.w1, s.w2 }
func (s *stubLinear) Bias() float64 { return s.b }
func (s *stubLinear) SupportVectors() []dataset.Sample { return s.svs }
func (s *stubLinear) DualCoefs() []float64 { return s.coefs }

func TestDeriveLinearBoundaryFromSupportVectors(t *testing.T) {
	// w = 2*(1,0) + 1*(0,1) = (2,1), b = 0.5
	stub := &stubLinear{
		b: 0.5,
		svs: []dataset.Sample{
			{Point: dataset.NewPoint(1, 0), Label: 1},
			{Point: dataset.NewPoint(0, 1), Label: 1},
		},
		coefs: []float64{2, 1},
	}

	boundary, err := DeriveLinearBoundary(stub)
	require.NoError(t, err)

	assert.InDelta(t, 2, boundary.W1, 1e-12)
	assert.InDelta(t, 1, boundary.W2, 1e-12)
	assert.InDelta(t, 0.5, boundary.B, 1e-12)

	// Any point on the decision line satisfies w·x = b.
	for _, x1 := range []float64{-3, -0.5, 0, 1.25, 7} {
		x2 := boundary.Decision.At(x1)
		assert.InDelta(t, boundary.B, boundary.W1*x1+boundary.W2*x2, 1e-9)
	}
}

func TestMarginLinesParallelAndUnitOffset(t *testing.T) {
	stub := &stubLinear{
		b: -2,
		svs: []dataset.Sample{
			{Point: dataset.NewPoint(3, -1), Label: 1},
			{Point: dataset.NewPoint(-2, 2), Label: -1},
		},
		coefs: []float64{0.5, -1.5},
	}

	boundary, err := DeriveLinearBoundary(stub)
	require.NoError(t, err)

	assert.Equal(t, boundary.Decision.Slope, boundary.LowerMargin.Slope)
	assert.Equal(t, boundary.Decision.Slope, boundary.UpperMargin.Slope)

	// Points on the margins sit at functional offsets -1 and +1.
	for _, x1 := range []float64{-1, 0, 2} {
		lower := boundary.W1*x1 + boundary.W2*boundary.LowerMargin.At(x1)
		upper := boundary.W1*x1 + boundary.W2*boundary.UpperMargin.At(x1)
		assert.InDelta(t, boundary.B-1, lower, 1e-9)
		assert.InDelta(t, boundary.B+1, upper, 1e-9)
	}
}

func TestDeriveLinearBoundaryVertical(t *testing.T) {
	// w = 1*(2,0) = (2,0): w2 == 0 cannot be expressed as
	// x2 = slope*x1 + intercept.
	stub := &stubLinear{
		b: 3,
		svs: []dataset.Sample{
			{Point: dataset.NewPoint(2, 0), Label: 1},
		},
		coefs: []float64{1},
	}

	boundary, err := DeriveLinearBoundary(stub)
	require.NoError(t, err)

	require.True(t, boundary.Decision.Vertical)
	assert.InDelta(t, 1.5, boundary.Decision.X1, 1e-12) // x1 = b/w1 = 3/2
	assert.InDelta(t, 1.0, boundary.LowerMargin.X1, 1e-12)
	assert.InDelta(t, 2.0, boundary.UpperMargin.X1, 1e-12)
}

func TestDeriveLinearBoundaryDegenerate(t *testing.T) {
	stub := &stubLinear{b: 1}

	_, err := DeriveLinearBoundary(stub)
	require.Error(t, err)

	var degenerate *DegenerateBoundaryError
	assert.ErrorAs(t, err, &degenerate)
}

func TestDeriveLinearBoundaryFallsBackToWeights(t *testing.T) {
	// No support vectors reported: use the classifier's own weights.
	stub := &stubLinear{w1: 1, w2: -1, b: 0}

	boundary, err := DeriveLinearBoundary(stub)
	require.NoError(t, err)
	assert.InDelta(t, 1, boundary.Decision.Slope, 1e-12)
	assert.InDelta(t, 0, boundary.Decision.Intercept, 1e-12)
}

func TestClassifyGridPreservesOrder(t *testing.T) {
	points := []dataset.Point2D{
		dataset.NewPoint(-1, -1),
		dataset.NewPoint(1, 1),
	}
	grid, err := BuildGrid(points, 5)
	require.NoError(t, err)

	stub := &stubLinear{w1: 1, w2: 1, b: 0}
	field, err := ClassifyGrid(grid, stub)
	require.NoError(t, err)

	require.Equal(t, len(grid.Points), len(field.Labels))
	require.Equal(t, len(grid.Points), len(stub.predicted))

	for i, p := range grid.Points {
		// The classifier was asked about exactly this point, in order.
		assert.True(t, p.X1.Equal(stub.predicted[i].X1))
		assert.True(t, p.X2.Equal(stub.predicted[i].X2))

		x1, x2 := p.Floats()
		want := -1
		if x1+x2 >= 0 {
			want = 1
		}
		assert.Equal(t, want, field.Labels[i], "label %d", i)
	}
}

func TestClassifyGridPropagatesFailure(t *testing.T) {
	grid, err := BuildGrid([]dataset.Point2D{
		dataset.NewPoint(0, 0),
		dataset.NewPoint(1, 1),
	}, 3)
	require.NoError(t, err)

	stub := &stubLinear{predictErr: fmt.Errorf("collaborator exploded")}
	_, err = ClassifyGrid(grid, stub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collaborator exploded")
}
