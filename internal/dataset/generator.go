package dataset

import (
	"fmt"
	"math/rand"
)

// ClusterConfig describes the synthetic two-cluster demo dataset: a
// negative cluster around the origin and a positive cluster shifted by
// (ShiftX1, ShiftX2).
type ClusterConfig struct {
	PerClass int
	Spread   float64
	ShiftX1  float64
	ShiftX2  float64
}

func DefaultClusterConfig() ClusterConfig {
	return ClusterConfig{
		PerClass: 20,
		Spread:   0.25,
		ShiftX1:  1,
		ShiftX2:  1,
	}
}

// GenerateClusters builds the demo training set from an explicit rng so
// identical seeds reproduce identical datasets.
func GenerateClusters(rng *rand.Rand, config ClusterConfig) ([]Sample, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: rng is nil", ErrInput)
	}
	if config.PerClass <= 0 {
		return nil, fmt.Errorf("%w: samples per class must be positive, got %d", ErrInput, config.PerClass)
	}

	samples := make([]Sample, 0, 2*config.PerClass)

	for i := 0; i < config.PerClass; i++ {
		samples = append(samples, Sample{
			Point: NewPoint(rng.NormFloat64()*config.Spread, rng.NormFloat64()*config.Spread),
			Label: -1,
		})
	}

	for i := 0; i < config.PerClass; i++ {
		samples = append(samples, Sample{
			Point: NewPoint(
				rng.NormFloat64()*config.Spread+config.ShiftX1,
				rng.NormFloat64()*config.Spread+config.ShiftX2,
			),
			Label: 1,
		})
	}

	return samples, nil
}
