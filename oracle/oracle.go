// Package oracle runs the parity-verification pipeline: load the fixed
// train/test splits, fit a classifier through the model.Classifier boundary,
// score both splits, and emit one deterministic JSON report on a writer.
//
// The classifier is passed in, not constructed here, so the implementation
// under parity test can replace the bundled reference classifier without
// touching the pipeline.
package oracle

import (
	"encoding/json"
	"io"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/ahmedaabouzied/boostoracle/core/model"
	"github.com/ahmedaabouzied/boostoracle/dataset"
	"github.com/ahmedaabouzied/boostoracle/metrics"
	"github.com/ahmedaabouzied/boostoracle/pkg/errors"
	"github.com/ahmedaabouzied/boostoracle/pkg/log"
)

// Report is the sole output of a successful run. Field order is fixed by the
// struct, so the serialized form is byte-identical across runs on identical
// inputs.
type Report struct {
	TestProbabilities []float64 `json:"test_probabilities"`
	TestPredictions   []float64 `json:"test_predictions"`
	TestAccuracy      float64   `json:"test_accuracy"`
	TrainAccuracy     float64   `json:"train_accuracy"`
}

// Write serializes the report as a single JSON line with no extra output.
func (r *Report) Write(w io.Writer) error {
	data, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

// Run executes the full pipeline against the split files in dir. Any failure
// aborts the run; no partial report is produced.
func Run(dir string, clf model.Classifier) (*Report, error) {
	start := time.Now()
	logger := log.GetLoggerWithName("oracle")

	train, test, err := dataset.Load(dir)
	if err != nil {
		return nil, err
	}

	if err := clf.Fit(train.X, train.Y); err != nil {
		return nil, err
	}

	report, err := score(clf, train, test)
	if err != nil {
		return nil, err
	}

	logger.Info("parity report computed",
		log.DataDirKey, dir,
		"test_accuracy", report.TestAccuracy,
		"train_accuracy", report.TrainAccuracy,
		log.DurationMsKey, time.Since(start).Milliseconds())

	return report, nil
}

// score derives the four report values from the fitted classifier. The
// probability matrix must have exactly two columns; more classes would make
// the fixed positive-class column meaningless, so that case fails instead of
// silently picking a column.
func score(clf model.Classifier, train, test *dataset.Split) (*Report, error) {
	proba, err := clf.PredictProba(test.X)
	if err != nil {
		return nil, err
	}
	probaRows, probaCols := proba.Dims()
	if probaCols != 2 {
		return nil, errors.NewValueError("score", "expected a two-column probability matrix for binary classification")
	}

	testProbabilities := make([]float64, probaRows)
	for i := 0; i < probaRows; i++ {
		testProbabilities[i] = proba.At(i, 1)
	}

	testPred, err := clf.Predict(test.X)
	if err != nil {
		return nil, err
	}
	testAccuracy, err := metrics.AccuracyScore(test.Y, columnVec(testPred))
	if err != nil {
		return nil, err
	}

	trainPred, err := clf.Predict(train.X)
	if err != nil {
		return nil, err
	}
	trainAccuracy, err := metrics.AccuracyScore(train.Y, columnVec(trainPred))
	if err != nil {
		return nil, err
	}

	return &Report{
		TestProbabilities: testProbabilities,
		TestPredictions:   columnVec(testPred).RawVector().Data,
		TestAccuracy:      testAccuracy,
		TrainAccuracy:     trainAccuracy,
	}, nil
}

func columnVec(m mat.Matrix) *mat.VecDense {
	rows, _ := m.Dims()
	v := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v
}
