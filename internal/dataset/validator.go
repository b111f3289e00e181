package dataset

import (
	"fmt"
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) ValidatePoints(points []Point2D) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: point set is empty", ErrInput)
	}
	return nil
}

func (v *Validator) ValidateTrainingSet(samples []Sample) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w: training set is empty", ErrInput)
	}

	classCount := make(map[int]int)
	for i, s := range samples {
		if s.Label != -1 && s.Label != 1 {
			return fmt.Errorf("%w: sample %d has label %d, want -1 or +1", ErrInput, i, s.Label)
		}
		classCount[s.Label]++
	}

	if len(classCount) < 2 {
		return fmt.Errorf("%w: training set must have both classes, found %d", ErrInput, len(classCount))
	}

	return nil
}
