package classifier

import (
	"fmt"

	"github.com/rbelina/svmviz/internal/dataset"
)

// Config carries the user-facing training options: kernel choice,
// regularization cost and whether features were scaled beforehand.
type Config struct {
	Kernel string
	Cost   float64
	Scale  bool
	Epochs int
}

func DefaultConfig() Config {
	return Config{
		Kernel: KernelLinear,
		Cost:   10,
		Scale:  false,
		Epochs: defaultEpochs,
	}
}

// Train builds and fits a classifier for the given configuration.
// Only the linear kernel is backed by a trainer; the other recognized
// kernels return a TrainingError rather than a silently wrong model.
func Train(samples []dataset.Sample, config Config) (Linear, error) {
	if config.Cost <= 0 {
		config.Cost = 10
	}

	switch config.Kernel {
	case KernelLinear, "":
		svc := NewLinearSVC(config.Cost, config.Epochs)
		if err := svc.Fit(samples); err != nil {
			return nil, err
		}
		return svc, nil

	case KernelPolynomial, KernelRBF, KernelSigmoid:
		return nil, &TrainingError{
			Reason: fmt.Sprintf("kernel %q has no built-in trainer, only %q is supported", config.Kernel, KernelLinear),
		}

	default:
		return nil, &TrainingError{
			Reason: fmt.Sprintf("unknown kernel: %s", config.Kernel),
		}
	}
}
