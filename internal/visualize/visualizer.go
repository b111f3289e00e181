// Package visualize builds 2D decision-boundary diagrams for binary
// linear classifiers: a dense sampling grid over the data's bounding
// box, one prediction per grid point, and the decision line with its
// two margin lines derived from the classifier's support vectors.
package visualize

import (
	"github.com/rbelina/svmviz/internal/classifier"
	"github.com/rbelina/svmviz/internal/dataset"
	"github.com/rbelina/svmviz/internal/render"
)

// DefaultResolution matches the usual density of the demo diagram,
// 105 values per axis.
const DefaultResolution = 105

// Visualize runs the whole single-threaded pass: grid, prediction
// field, boundary derivation, rendering. Any failure aborts the pass;
// there is no partial result.
func Visualize(backend render.Backend, samples []dataset.Sample, c classifier.Linear, resolution int) error {
	grid, err := BuildGrid(dataset.Points(samples), resolution)
	if err != nil {
		return err
	}

	field, err := ClassifyGrid(grid, c)
	if err != nil {
		return err
	}

	boundary, err := DeriveLinearBoundary(c)
	if err != nil {
		return err
	}

	return Render(backend, field, samples, c.SupportVectors(), boundary)
}
