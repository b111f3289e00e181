package evaluation

import (
	"fmt"
	"math/rand"

	"github.com/rbelina/svmviz/internal/dataset"
)

// TrainTestSplitter splits a labeled set with an explicit seed so runs
// are reproducible.
type TrainTestSplitter struct {
	testSize   float64
	randomSeed int64
	shuffle    bool
}

func NewTrainTestSplitter(testSize float64, randomSeed int64, shuffle bool) *TrainTestSplitter {
	return &TrainTestSplitter{
		testSize:   testSize,
		randomSeed: randomSeed,
		shuffle:    shuffle,
	}
}

func (tts *TrainTestSplitter) Split(samples []dataset.Sample) ([]dataset.Sample, []dataset.Sample, error) {
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("cannot split empty dataset")
	}

	if tts.testSize <= 0 || tts.testSize >= 1 {
		return nil, nil, fmt.Errorf("test size must be between 0 and 1")
	}

	n := len(samples)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	if tts.shuffle {
		rng := rand.New(rand.NewSource(tts.randomSeed))
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	testCount := int(float64(n) * tts.testSize)
	trainCount := n - testCount

	train := make([]dataset.Sample, trainCount)
	test := make([]dataset.Sample, testCount)

	for i := 0; i < trainCount; i++ {
		train[i] = samples[indices[i]]
	}
	for i := 0; i < testCount; i++ {
		test[i] = samples[indices[trainCount+i]]
	}

	return train, test, nil
}

// StratifiedSplit keeps the class balance of both halves close to the
// original set's.
func (tts *TrainTestSplitter) StratifiedSplit(samples []dataset.Sample) ([]dataset.Sample, []dataset.Sample, error) {
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("cannot split empty dataset")
	}

	if tts.testSize <= 0 || tts.testSize >= 1 {
		return nil, nil, fmt.Errorf("test size must be between 0 and 1")
	}

	classIndices := make(map[int][]int)
	for i, s := range samples {
		classIndices[s.Label] = append(classIndices[s.Label], i)
	}

	var trainIndices, testIndices []int

	rng := rand.New(rand.NewSource(tts.randomSeed))
	for _, label := range []int{-1, 1} {
		indices := classIndices[label]
		if tts.shuffle {
			rng.Shuffle(len(indices), func(i, j int) {
				indices[i], indices[j] = indices[j], indices[i]
			})
		}

		testCount := int(float64(len(indices)) * tts.testSize)
		if testCount == 0 && len(indices) > 0 {
			testCount = 1
		}
		trainCount := len(indices) - testCount

		trainIndices = append(trainIndices, indices[:trainCount]...)
		testIndices = append(testIndices, indices[trainCount:]...)
	}

	train := make([]dataset.Sample, len(trainIndices))
	for i, idx := range trainIndices {
		train[i] = samples[idx]
	}
	test := make([]dataset.Sample, len(testIndices))
	for i, idx := range testIndices {
		test[i] = samples[idx]
	}

	return train, test, nil
}
