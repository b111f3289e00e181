package experiment

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rbelina/svmviz/internal/classifier"
	"github.com/rbelina/svmviz/internal/dataset"
	"github.com/rbelina/svmviz/internal/evaluation"
	"github.com/rbelina/svmviz/internal/preprocessing"
)

// Runner sweeps the training configuration space of the linear
// classifier: cost values crossed with preprocessing modes, each
// evaluated on a held-out split.
type Runner struct {
	Config *SweepConfig
}

type SweepConfig struct {
	Sweep struct {
		Costs         []float64 `yaml:"costs"`
		Preprocessing []string  `yaml:"preprocessing"`
		TestSize      float64   `yaml:"test_size"`
		Seed          int64     `yaml:"seed"`
	} `yaml:"sweep"`
}

func DefaultSweepConfig() *SweepConfig {
	config := &SweepConfig{}
	config.Sweep.Costs = []float64{0.1, 1, 10, 100}
	config.Sweep.Preprocessing = []string{"raw", "standard"}
	config.Sweep.TestSize = 0.25
	config.Sweep.Seed = 42
	return config
}

func NewRunner(configFile string) *Runner {
	config := DefaultSweepConfig()

	data, err := os.ReadFile(configFile)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	return &Runner{Config: config}
}

type Result struct {
	Cost           float64
	Preprocessing  string
	Accuracy       float64
	Precision      float64
	Recall         float64
	F1Score        float64
	SupportVectors int
	TrainingTimeMs int64
}

func (r *Runner) RunSweep(samples []dataset.Sample) ([]Result, error) {
	if err := dataset.NewValidator().ValidateTrainingSet(samples); err != nil {
		return nil, err
	}

	var results []Result

	for _, prep := range r.Config.Sweep.Preprocessing {
		prepared, err := r.preprocess(samples, prep)
		if err != nil {
			return nil, fmt.Errorf("preprocessing %q: %w", prep, err)
		}

		splitter := evaluation.NewTrainTestSplitter(r.Config.Sweep.TestSize, r.Config.Sweep.Seed, true)
		train, test, err := splitter.StratifiedSplit(prepared)
		if err != nil {
			return nil, err
		}

		for _, cost := range r.Config.Sweep.Costs {
			result, err := r.evaluate(train, test, cost, prep)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
	}

	return results, nil
}

func (r *Runner) preprocess(samples []dataset.Sample, method string) ([]dataset.Sample, error) {
	switch method {
	case "raw", "none", "":
		return samples, nil
	default:
		scaler := preprocessing.NewScaler(method)
		if err := scaler.Fit(dataset.Points(samples)); err != nil {
			return nil, err
		}
		return scaler.TransformSamples(samples)
	}
}

func (r *Runner) evaluate(train, test []dataset.Sample, cost float64, prep string) (Result, error) {
	result := Result{
		Cost:          cost,
		Preprocessing: prep,
	}

	startTime := time.Now()
	model, err := classifier.Train(train, classifier.Config{Kernel: classifier.KernelLinear, Cost: cost})
	if err != nil {
		return result, err
	}
	result.TrainingTimeMs = time.Since(startTime).Milliseconds()
	result.SupportVectors = len(model.SupportVectors())

	yTrue := dataset.Labels(test)
	yPred := make([]int, len(test))
	for i, s := range test {
		yPred[i], err = model.Predict(s.Point)
		if err != nil {
			return result, err
		}
	}

	metrics, err := evaluation.CalculateMetrics(yTrue, yPred)
	if err != nil {
		return result, err
	}

	result.Accuracy = metrics.Accuracy
	result.Precision = metrics.Precision
	result.Recall = metrics.Recall
	result.F1Score = metrics.F1Score

	return result, nil
}

func (r *Runner) ExportResults(results []Result, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{
		"Cost", "Preprocessing", "Accuracy", "Precision", "Recall",
		"F1Score", "SupportVectors", "TrainingTimeMs",
	})

	for _, result := range results {
		writer.Write([]string{
			fmt.Sprintf("%g", result.Cost),
			result.Preprocessing,
			fmt.Sprintf("%.4f", result.Accuracy),
			fmt.Sprintf("%.4f", result.Precision),
			fmt.Sprintf("%.4f", result.Recall),
			fmt.Sprintf("%.4f", result.F1Score),
			fmt.Sprintf("%d", result.SupportVectors),
			fmt.Sprintf("%d", result.TrainingTimeMs),
		})
	}

	return nil
}
