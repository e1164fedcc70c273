// Command irissplit regenerates the oracle's fixture files: it loads a
// labeled CSV, performs a seeded 80/20 shuffle split, and writes
// iris_train.csv and iris_test.csv into the output directory so the oracle
// and the implementation under parity test read identical data.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ahmedaabouzied/boostoracle/dataset"
	"github.com/ahmedaabouzied/boostoracle/pkg/log"
)

var (
	input     string
	outputDir string
	testRatio float64
	seed      int64
)

var rootCmd = &cobra.Command{
	Use:           "irissplit",
	Short:         "Split a labeled CSV into the train/test fixture files the oracle reads",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		full, err := dataset.LoadFile(input, "full")
		if err != nil {
			return err
		}

		XTrain, XTest, yTrain, yTest, err := dataset.TrainTestSplit(full.X, full.Y, testRatio, seed)
		if err != nil {
			return err
		}

		trainPath := filepath.Join(outputDir, dataset.TrainFile)
		if err := dataset.WriteCSV(trainPath, full.FeatureNames, XTrain, yTrain); err != nil {
			return err
		}
		testPath := filepath.Join(outputDir, dataset.TestFile)
		if err := dataset.WriteCSV(testPath, full.FeatureNames, XTest, yTest); err != nil {
			return err
		}

		trainRows, _ := XTrain.Dims()
		testRows, _ := XTest.Dims()
		slog.Info("fixture files written",
			"train_path", trainPath,
			"test_path", testPath,
			"train_rows", trainRows,
			"test_rows", testRows)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&input, "input", "data/iris_binary.csv", "labeled CSV to split")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "data", "directory to write the split files into")
	rootCmd.Flags().Float64Var(&testRatio, "test-ratio", 0.2, "fraction of rows for the test split")
	rootCmd.Flags().Int64Var(&seed, "seed", 42, "seed for the shuffle")
}

func main() {
	log.SetupLogger("info")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("split failed", log.ErrAttr(err))
		os.Exit(1)
	}
}
