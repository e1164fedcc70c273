// Command oracle trains the reference gradient-boosting classifier on the
// fixed train/test split pair and prints the parity report as a single JSON
// line on stdout. All diagnostics go to stderr; stdout carries nothing else.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahmedaabouzied/boostoracle/ensemble"
	"github.com/ahmedaabouzied/boostoracle/oracle"
	"github.com/ahmedaabouzied/boostoracle/pkg/log"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:           "oracle",
	Short:         "Train the reference gradient boosting classifier and emit the parity report",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := oracle.Run(dataDir, ensemble.NewGradientBoostingClassifier())
		if err != nil {
			return err
		}
		return report.Write(os.Stdout)
	},
}

func init() {
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "data", "directory containing iris_train.csv and iris_test.csv")
}

func main() {
	log.SetupLogger("info")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("run failed", log.ErrAttr(err))
		os.Exit(1)
	}
}
