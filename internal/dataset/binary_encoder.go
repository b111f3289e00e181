package dataset

import (
	"fmt"
	"sort"
)

// BinaryEncoder maps exactly two class names onto the labels -1 and +1.
// Names are assigned in sorted order so encoding is reproducible.
type BinaryEncoder struct {
	ClassToInt map[string]int
	IntToClass map[int]string
	IsFitted   bool
}

func NewBinaryEncoder() *BinaryEncoder {
	return &BinaryEncoder{
		ClassToInt: make(map[string]int),
		IntToClass: make(map[int]string),
		IsFitted:   false,
	}
}

func (be *BinaryEncoder) Fit(labels []string) error {
	uniqueLabels := make(map[string]bool)
	for _, label := range labels {
		uniqueLabels[label] = true
	}

	if len(uniqueLabels) != 2 {
		return fmt.Errorf("%w: binary encoder needs exactly 2 classes, found %d", ErrInput, len(uniqueLabels))
	}

	names := make([]string, 0, 2)
	for label := range uniqueLabels {
		names = append(names, label)
	}
	sort.Strings(names)

	be.ClassToInt = map[string]int{names[0]: -1, names[1]: 1}
	be.IntToClass = map[int]string{-1: names[0], 1: names[1]}
	be.IsFitted = true
	return nil
}

func (be *BinaryEncoder) Transform(labels []string) ([]int, error) {
	if !be.IsFitted {
		return nil, fmt.Errorf("BinaryEncoder must be fitted before transform")
	}

	result := make([]int, len(labels))
	for i, label := range labels {
		val, ok := be.ClassToInt[label]
		if !ok {
			return nil, fmt.Errorf("unknown label: %s", label)
		}
		result[i] = val
	}

	return result, nil
}

func (be *BinaryEncoder) FitTransform(labels []string) ([]int, error) {
	if err := be.Fit(labels); err != nil {
		return nil, err
	}
	return be.Transform(labels)
}

func (be *BinaryEncoder) InverseTransform(encoded []int) ([]string, error) {
	if !be.IsFitted {
		return nil, fmt.Errorf("BinaryEncoder must be fitted before inverse transform")
	}

	result := make([]string, len(encoded))
	for i, val := range encoded {
		label, ok := be.IntToClass[val]
		if !ok {
			return nil, fmt.Errorf("unknown encoding: %d", val)
		}
		result[i] = label
	}

	return result, nil
}
