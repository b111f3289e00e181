package visualize

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rbelina/svmviz/internal/classifier"
)

// DegenerateBoundaryError reports a classifier whose weight vector is
// zero: the linear decision function has no orientation and no line can
// be drawn from it.
type DegenerateBoundaryError struct {
	B float64
}

func (e *DegenerateBoundaryError) Error() string {
	return "degenerate boundary: weight vector is zero, no usable linear separator"
}

// Line is a line in the feature plane. The usual form is
// x2 = Slope*x1 + Intercept; a vertical line (undefined slope) is
// represented explicitly as x1 = X1.
type Line struct {
	Vertical  bool
	Slope     float64
	Intercept float64
	X1        float64
}

// At returns the x2 value at x1. Meaningless for vertical lines.
func (l Line) At(x1 float64) float64 {
	return l.Slope*x1 + l.Intercept
}

// Boundary is the decision line w·x = b of a linear classifier together
// with the two margin lines at functional offsets -1 and +1.
type Boundary struct {
	W1, W2 float64
	B      float64

	Decision    Line
	LowerMargin Line
	UpperMargin Line
}

// DeriveLinearBoundary reconstructs the weight vector as the
// coefficient-weighted sum over support vectors and lays out the
// decision and margin lines. The vertical case (w2 == 0) is handled
// explicitly rather than relying on infinite slopes.
func DeriveLinearBoundary(c classifier.Linear) (*Boundary, error) {
	svs := c.SupportVectors()
	coefs := c.DualCoefs()
	b := c.Bias()

	var w1, w2 float64
	if len(svs) > 0 && len(svs) == len(coefs) {
		sv := mat.NewDense(len(svs), 2, nil)
		for i, s := range svs {
			x1, x2 := s.Point.Floats()
			sv.Set(i, 0, x1)
			sv.Set(i, 1, x2)
		}

		var w mat.VecDense
		w.MulVec(sv.T(), mat.NewVecDense(len(coefs), coefs))
		w1, w2 = w.AtVec(0), w.AtVec(1)
	} else {
		// Classifier reports no support vectors; fall back to its own
		// weight vector.
		w1, w2 = c.Weights()
	}

	if w1 == 0 && w2 == 0 {
		return nil, &DegenerateBoundaryError{B: b}
	}

	return &Boundary{
		W1:          w1,
		W2:          w2,
		B:           b,
		Decision:    lineAtOffset(w1, w2, b, 0),
		LowerMargin: lineAtOffset(w1, w2, b, -1),
		UpperMargin: lineAtOffset(w1, w2, b, 1),
	}, nil
}

// lineAtOffset solves w·x = b + offset for x2, or for x1 when the line
// is vertical:
//
//	x2 = (b + offset - w1*x1) / w2    (w2 != 0)
//	x1 = (b + offset) / w1            (w2 == 0)
func lineAtOffset(w1, w2, b, offset float64) Line {
	if w2 == 0 {
		return Line{
			Vertical: true,
			X1:       (b + offset) / w1,
		}
	}
	return Line{
		Slope:     -w1 / w2,
		Intercept: (b + offset) / w2,
	}
}
