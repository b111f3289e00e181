package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rbelina/svmviz/internal/classifier"
	"github.com/rbelina/svmviz/internal/dataset"
	"github.com/rbelina/svmviz/internal/evaluation"
	"github.com/rbelina/svmviz/internal/persistence"
	"github.com/rbelina/svmviz/internal/preprocessing"
	"github.com/rbelina/svmviz/internal/render"
	"github.com/rbelina/svmviz/internal/visualize"
)

type demoConfig struct {
	Demo struct {
		Kernel     string  `yaml:"kernel"`
		Cost       float64 `yaml:"cost"`
		Scale      bool    `yaml:"scale"`
		Resolution int     `yaml:"resolution"`
		Seed       int64   `yaml:"seed"`
		PerClass   int     `yaml:"per_class"`
	} `yaml:"demo"`
}

func defaultDemoConfig() *demoConfig {
	config := &demoConfig{}
	config.Demo.Kernel = classifier.KernelLinear
	config.Demo.Cost = 10
	config.Demo.Scale = false
	config.Demo.Resolution = visualize.DefaultResolution
	config.Demo.Seed = 42
	config.Demo.PerClass = 20
	return config
}

func newDemoCommand() *cobra.Command {
	var (
		configFile string
		csvFile    string
		kernel     string
		cost       float64
		scale      bool
		resolution int
		seed       int64
		perClass   int
		outFile    string
		plotFile   string
		modelFile  string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Train on two synthetic clusters (or a CSV) and render the boundary",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := defaultDemoConfig()
			if configFile != "" {
				data, err := os.ReadFile(configFile)
				if err != nil {
					return errors.Wrap(err, "reading config")
				}
				if err := yaml.Unmarshal(data, config); err != nil {
					return errors.Wrap(err, "parsing config")
				}
			}

			// Explicit flags win over the config file.
			if cmd.Flags().Changed("kernel") {
				config.Demo.Kernel = kernel
			}
			if cmd.Flags().Changed("cost") {
				config.Demo.Cost = cost
			}
			if cmd.Flags().Changed("scale") {
				config.Demo.Scale = scale
			}
			if cmd.Flags().Changed("resolution") {
				config.Demo.Resolution = resolution
			}
			if cmd.Flags().Changed("seed") {
				config.Demo.Seed = seed
			}
			if cmd.Flags().Changed("per-class") {
				config.Demo.PerClass = perClass
			}

			return runDemo(config, csvFile, outFile, plotFile, modelFile)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "YAML config file")
	cmd.Flags().StringVar(&csvFile, "csv", "", "CSV training data (x1,x2,label); synthetic clusters when empty")
	cmd.Flags().StringVar(&kernel, "kernel", classifier.KernelLinear, "kernel (linear|polynomial|rbf|sigmoid)")
	cmd.Flags().Float64Var(&cost, "cost", 10, "regularization cost C")
	cmd.Flags().BoolVar(&scale, "scale", false, "standardize features before training")
	cmd.Flags().IntVar(&resolution, "resolution", visualize.DefaultResolution, "grid resolution per axis")
	cmd.Flags().Int64Var(&seed, "seed", 42, "rng seed for the synthetic dataset")
	cmd.Flags().IntVar(&perClass, "per-class", 20, "synthetic samples per class")
	cmd.Flags().StringVar(&outFile, "out", "boundary.png", "output PNG path")
	cmd.Flags().StringVar(&plotFile, "plot-json", "", "also write a plot-spec JSON document")
	cmd.Flags().StringVar(&modelFile, "model-out", "", "save the trained model bundle")

	return cmd
}

func runDemo(config *demoConfig, csvFile, outFile, plotFile, modelFile string) error {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	samples, err := loadOrGenerate(config, csvFile)
	if err != nil {
		return err
	}
	logger.Infow("dataset ready", "samples", len(samples))

	var scaler *preprocessing.Scaler
	if config.Demo.Scale {
		scaler = preprocessing.NewScaler("standard")
		if err := scaler.Fit(dataset.Points(samples)); err != nil {
			return errors.Wrap(err, "fitting scaler")
		}
		samples, err = scaler.TransformSamples(samples)
		if err != nil {
			return errors.Wrap(err, "scaling samples")
		}
		logger.Info("features standardized")
	}

	model, err := classifier.Train(samples, classifier.Config{
		Kernel: config.Demo.Kernel,
		Cost:   config.Demo.Cost,
		Scale:  config.Demo.Scale,
	})
	if err != nil {
		return errors.Wrap(err, "training classifier")
	}

	w1, w2 := model.Weights()
	logger.Infow("model trained",
		"w1", w1, "w2", w2, "b", model.Bias(),
		"support_vectors", len(model.SupportVectors()))

	metrics, err := trainingMetrics(model, samples)
	if err != nil {
		return errors.Wrap(err, "evaluating model")
	}
	fmt.Printf("%s\n%s", cyan("Training-set metrics:"), metrics.FormatMetrics())

	backend := render.NewImageBackend(800, 600)
	if err := visualize.Visualize(backend, samples, model, config.Demo.Resolution); err != nil {
		return errors.Wrap(err, "building diagram")
	}
	if err := backend.Save(outFile); err != nil {
		return errors.Wrap(err, "saving diagram")
	}
	fmt.Printf("%s %s\n", green("Diagram written to"), outFile)

	if plotFile != "" {
		plotBackend := render.NewPlotDataBackend("Linear SVM decision boundary")
		if err := visualize.Visualize(plotBackend, samples, model, config.Demo.Resolution); err != nil {
			return errors.Wrap(err, "building plot document")
		}
		if err := plotBackend.Save(plotFile); err != nil {
			return errors.Wrap(err, "saving plot document")
		}
		fmt.Printf("%s %s\n", green("Plot document written to"), plotFile)
	}

	if modelFile != "" {
		svc, ok := model.(*classifier.LinearSVC)
		if !ok {
			return fmt.Errorf("cannot persist model of type %T", model)
		}
		bundle := persistence.NewModelBundle(svc)
		bundle.Scaler = scaler
		bundle.Metadata.Dataset = csvFile
		bundle.Metadata.Scaled = config.Demo.Scale
		bundle.Metadata.Accuracy = metrics.Accuracy
		bundle.Metadata.Precision = metrics.Precision
		bundle.Metadata.Recall = metrics.Recall
		bundle.Metadata.F1Score = metrics.F1Score
		if err := bundle.Save(modelFile); err != nil {
			return errors.Wrap(err, "saving model bundle")
		}
		fmt.Printf("%s %s\n", green("Model saved to"), modelFile)
	}

	return nil
}

func loadOrGenerate(config *demoConfig, csvFile string) ([]dataset.Sample, error) {
	if csvFile != "" {
		reader, err := dataset.NewCSVReader(csvFile)
		if err != nil {
			return nil, err
		}
		samples, _, err := reader.LoadSamples()
		if err != nil {
			return nil, errors.Wrap(err, "loading CSV")
		}
		return samples, nil
	}

	rng := rand.New(rand.NewSource(config.Demo.Seed))
	clusters := dataset.DefaultClusterConfig()
	clusters.PerClass = config.Demo.PerClass
	return dataset.GenerateClusters(rng, clusters)
}

func trainingMetrics(model classifier.Linear, samples []dataset.Sample) (*evaluation.BinaryMetrics, error) {
	yTrue := dataset.Labels(samples)
	yPred := make([]int, len(samples))
	for i, s := range samples {
		label, err := model.Predict(s.Point)
		if err != nil {
			return nil, err
		}
		yPred[i] = label
	}
	return evaluation.CalculateMetrics(yTrue, yPred)
}
