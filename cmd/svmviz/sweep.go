package main

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rbelina/svmviz/internal/dataset"
	"github.com/rbelina/svmviz/internal/experiment"
)

func newSweepCommand() *cobra.Command {
	var (
		configFile string
		csvFile    string
		outFile    string
		seed       int64
		perClass   int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep cost and preprocessing settings, export accuracy per combination",
		RunE: func(cmd *cobra.Command, args []string) error {
			var samples []dataset.Sample
			var err error

			if csvFile != "" {
				reader, err := dataset.NewCSVReader(csvFile)
				if err != nil {
					return err
				}
				samples, _, err = reader.LoadSamples()
				if err != nil {
					return errors.Wrap(err, "loading CSV")
				}
			} else {
				rng := rand.New(rand.NewSource(seed))
				clusters := dataset.DefaultClusterConfig()
				clusters.PerClass = perClass
				samples, err = dataset.GenerateClusters(rng, clusters)
				if err != nil {
					return err
				}
			}

			runner := experiment.NewRunner(configFile)
			results, err := runner.RunSweep(samples)
			if err != nil {
				return errors.Wrap(err, "running sweep")
			}

			if len(results) == 0 {
				return errors.New("sweep config produced no combinations")
			}

			if err := runner.ExportResults(results, outFile); err != nil {
				return errors.Wrap(err, "exporting results")
			}

			best := results[0]
			for _, result := range results[1:] {
				if result.Accuracy > best.Accuracy {
					best = result
				}
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s %d combinations, results in %s\n", green("Sweep finished:"), len(results), outFile)
			fmt.Printf("Best accuracy %.4f (cost %g, %s preprocessing, %d support vectors)\n",
				best.Accuracy, best.Cost, best.Preprocessing, best.SupportVectors)

			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "YAML sweep config file")
	cmd.Flags().StringVar(&csvFile, "csv", "", "CSV training data; synthetic clusters when empty")
	cmd.Flags().StringVar(&outFile, "out", "sweep_results.csv", "output CSV path")
	cmd.Flags().Int64Var(&seed, "seed", 42, "rng seed for the synthetic dataset")
	cmd.Flags().IntVar(&perClass, "per-class", 20, "synthetic samples per class")

	return cmd
}
