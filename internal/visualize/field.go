package visualize

import (
	"fmt"

	"github.com/rbelina/svmviz/internal/classifier"
)

// Field holds one predicted label per grid point, in grid order.
type Field struct {
	Grid   *Grid
	Labels []int
}

// ClassifyGrid asks the classifier for a label at every grid point.
// Each prediction is independent; a failure aborts the pass.
func ClassifyGrid(grid *Grid, c classifier.Classifier) (*Field, error) {
	if grid == nil || len(grid.Points) == 0 {
		return nil, fmt.Errorf("cannot classify an empty grid")
	}

	labels := make([]int, len(grid.Points))
	for i, p := range grid.Points {
		label, err := c.Predict(p)
		if err != nil {
			return nil, fmt.Errorf("classifying grid point %d: %w", i, err)
		}
		labels[i] = label
	}

	return &Field{Grid: grid, Labels: labels}, nil
}
