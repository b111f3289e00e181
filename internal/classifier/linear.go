package classifier

import (
	"fmt"

	"github.com/rbelina/svmviz/internal/dataset"
)

// LinearSVC is a linear support-vector classifier trained by hinge-loss
// subgradient descent. It is deliberately primal-only: no kernel
// matrix, no quadratic program. Per-sample coefficients are tracked
// alongside the weight vector so the final model can report which
// samples actually shaped the boundary.
type LinearSVC struct {
	Name   string
	Params map[string]any

	Cost   float64
	Epochs int

	W1, W2 float64
	B      float64

	XTrain []dataset.Sample
	Coefs  []float64 // signed: coef_i = beta_i * y_i, w = sum coef_i * x_i

	Fitted bool
}

const (
	defaultEpochs = 400

	// Coefficients below this fraction of the largest one are decayed
	// leftovers from early epochs, not support vectors.
	coefPruneRatio = 1e-4
)

func NewLinearSVC(cost float64, epochs int) *LinearSVC {
	if cost <= 0 {
		cost = 1
	}
	if epochs <= 0 {
		epochs = defaultEpochs
	}

	return &LinearSVC{
		Name:   "LinearSVC",
		Cost:   cost,
		Epochs: epochs,
		Params: map[string]any{
			"kernel": KernelLinear,
			"cost":   cost,
			"epochs": epochs,
		},
	}
}

// Fit trains on the labeled set. Labels must be -1/+1 and both classes
// must be present. Training is deterministic: samples are visited in
// input order every epoch.
func (svc *LinearSVC) Fit(samples []dataset.Sample) error {
	if err := dataset.NewValidator().ValidateTrainingSet(samples); err != nil {
		return &TrainingError{Reason: "invalid training set", Err: err}
	}

	svc.XTrain = make([]dataset.Sample, len(samples))
	copy(svc.XTrain, samples)

	n := len(samples)
	lambda := 1 / (svc.Cost * float64(n))

	x1s := make([]float64, n)
	x2s := make([]float64, n)
	for i, s := range samples {
		x1s[i], x2s[i] = s.Point.Floats()
	}

	// beta_i accumulates the learning-rate mass sample i contributed.
	// The invariant maintained by the two updates below is
	// w = sum_i beta_i * y_i * x_i.
	beta := make([]float64, n)
	var w1, w2, b float64

	step := 0
	for epoch := 0; epoch < svc.Epochs; epoch++ {
		for i := 0; i < n; i++ {
			step++
			eta := 1 / (lambda * float64(step))
			y := float64(samples[i].Label)

			if y*(w1*x1s[i]+w2*x2s[i]-b) < 1 {
				decay := 1 - eta*lambda
				w1 = decay*w1 + eta*y*x1s[i]
				w2 = decay*w2 + eta*y*x2s[i]
				b -= eta * y
				for j := range beta {
					beta[j] *= decay
				}
				beta[i] += eta
			}
		}
	}

	svc.Coefs = pruneCoefs(beta, samples)

	// Recompute w from the pruned coefficients so the exported support
	// vectors reproduce the weight vector exactly.
	svc.W1, svc.W2 = 0, 0
	for i, coef := range svc.Coefs {
		if coef == 0 {
			continue
		}
		svc.W1 += coef * x1s[i]
		svc.W2 += coef * x2s[i]
	}
	svc.B = b

	svc.Fitted = true
	return nil
}

func pruneCoefs(beta []float64, samples []dataset.Sample) []float64 {
	maxBeta := 0.0
	for _, v := range beta {
		if v > maxBeta {
			maxBeta = v
		}
	}

	coefs := make([]float64, len(beta))
	for i, v := range beta {
		if v > maxBeta*coefPruneRatio {
			coefs[i] = v * float64(samples[i].Label)
		}
	}
	return coefs
}

func (svc *LinearSVC) Predict(p dataset.Point2D) (int, error) {
	if !svc.Fitted {
		return 0, fmt.Errorf("model must be fitted before predict")
	}

	x1, x2 := p.Floats()
	if svc.W1*x1+svc.W2*x2-svc.B >= 0 {
		return 1, nil
	}
	return -1, nil
}

func (svc *LinearSVC) Weights() (float64, float64) {
	return svc.W1, svc.W2
}

func (svc *LinearSVC) Bias() float64 {
	return svc.B
}

// SupportVectors returns the training samples with nonzero coefficient,
// in training order.
func (svc *LinearSVC) SupportVectors() []dataset.Sample {
	svs := make([]dataset.Sample, 0)
	for i, coef := range svc.Coefs {
		if coef != 0 {
			svs = append(svs, svc.XTrain[i])
		}
	}
	return svs
}

// DualCoefs returns the signed coefficients aligned with
// SupportVectors: coefficient times label sign, so the weight vector is
// the coefficient-weighted sum of support-vector coordinates.
func (svc *LinearSVC) DualCoefs() []float64 {
	coefs := make([]float64, 0)
	for _, coef := range svc.Coefs {
		if coef != 0 {
			coefs = append(coefs, coef)
		}
	}
	return coefs
}

func (svc *LinearSVC) GetName() string {
	return svc.Name
}

func (svc *LinearSVC) GetParams() map[string]any {
	return svc.Params
}

func (svc *LinearSVC) GetClasses() []int {
	return []int{-1, 1}
}

func (svc *LinearSVC) Reset() {
	svc.XTrain = nil
	svc.Coefs = nil
	svc.W1, svc.W2, svc.B = 0, 0, 0
	svc.Fitted = false
}
