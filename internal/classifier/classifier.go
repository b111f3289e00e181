package classifier

import (
	"fmt"

	"github.com/rbelina/svmviz/internal/dataset"
)

// Recognized kernel names. Only the linear kernel has a built-in
// trainer; the others are accepted in configuration so callers get a
// precise error instead of a typo-shaped one.
const (
	KernelLinear     = "linear"
	KernelPolynomial = "polynomial"
	KernelRBF        = "rbf"
	KernelSigmoid    = "sigmoid"
)

// Classifier is the prediction surface the grid visualizer depends on.
type Classifier interface {
	Predict(p dataset.Point2D) (int, error)
}

// Linear is a trained classifier whose decision function is linear in
// the original feature space: f(x) = w·x − b, predicting +1 when
// f(x) >= 0. The exported support vectors and signed dual coefficients
// satisfy w = Σ coef_i · x_i.
type Linear interface {
	Classifier
	Weights() (w1, w2 float64)
	Bias() float64
	SupportVectors() []dataset.Sample
	DualCoefs() []float64
}

// TrainingError reports a failure of the training collaborator:
// malformed inputs or an unsupported configuration.
type TrainingError struct {
	Reason string
	Err    error
}

func (e *TrainingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("training failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("training failed: %s", e.Reason)
}

func (e *TrainingError) Unwrap() error {
	return e.Err
}
