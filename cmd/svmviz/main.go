package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync()
	logger = zl.Sugar()

	rootCmd := &cobra.Command{
		Use:   "svmviz",
		Short: "Decision-boundary diagrams for linear SVM classifiers",
		Long: `svmviz trains a linear support-vector classifier on 2D data and
renders its decision boundary: class regions sampled on a dense grid,
the training points, the support vectors, and the margin lines.`,
	}

	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newSweepCommand())

	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("command failed: %v", err)
		os.Exit(1)
	}
}
