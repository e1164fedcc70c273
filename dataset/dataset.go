// Package dataset loads the fixed train/test CSV pair the parity oracle
// evaluates on, and provides the split utilities used to generate those
// fixture files in the first place.
package dataset

import (
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/ahmedaabouzied/boostoracle/pkg/errors"
	"github.com/ahmedaabouzied/boostoracle/pkg/log"
)

const (
	// TrainFile is the fixed name of the training split inside the data directory.
	TrainFile = "iris_train.csv"
	// TestFile is the fixed name of the test split inside the data directory.
	TestFile = "iris_test.csv"
	// LabelColumn is the required name of the label column in both files.
	LabelColumn = "label"
)

// Split is one dataset split: a feature matrix and its aligned label vector.
type Split struct {
	Name         string
	X            *mat.Dense
	Y            *mat.VecDense
	FeatureNames []string
}

// NumRows returns the number of samples in the split.
func (s *Split) NumRows() int {
	r, _ := s.X.Dims()
	return r
}

// NumFeatures returns the number of feature columns.
func (s *Split) NumFeatures() int {
	_, c := s.X.Dims()
	return c
}

// Load reads the train and test splits from dir and verifies that both carry
// the same feature columns in the same order. A missing directory or file is
// a FileAccessError; a header or value problem is a SchemaError; a file with
// no data rows is an EmptySplitError.
func Load(dir string) (train, test *Split, err error) {
	if _, statErr := os.Stat(dir); statErr != nil {
		return nil, nil, errors.NewFileAccessError(dir, statErr)
	}

	train, err = LoadFile(filepath.Join(dir, TrainFile), "train")
	if err != nil {
		return nil, nil, err
	}
	test, err = LoadFile(filepath.Join(dir, TestFile), "test")
	if err != nil {
		return nil, nil, err
	}

	if !slices.Equal(train.FeatureNames, test.FeatureNames) {
		return nil, nil, errors.NewSchemaError("", "train and test feature columns differ")
	}

	logger := log.GetLoggerWithName("dataset")
	logger.Debug("dataset loaded",
		log.DataDirKey, dir,
		log.FeaturesKey, train.NumFeatures(),
		"train_rows", train.NumRows(),
		"test_rows", test.NumRows())

	return train, test, nil
}

// LoadFile parses one delimited split file. The header row is required and
// must contain the label column; every other column is a numeric feature and
// keeps its file order in the feature matrix.
func LoadFile(path, splitName string) (*Split, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileAccessError(path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.NewSchemaError(path, "malformed delimited text: "+err.Error())
	}
	if len(records) == 0 {
		return nil, errors.NewSchemaError(path, "missing header row")
	}

	header := records[0]
	labelIdx := slices.Index(header, LabelColumn)
	if labelIdx < 0 {
		return nil, errors.NewSchemaError(path, "missing '"+LabelColumn+"' column")
	}

	featureNames := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i != labelIdx {
			featureNames = append(featureNames, name)
		}
	}

	dataRows := records[1:]
	if len(dataRows) == 0 {
		return nil, errors.NewEmptySplitError(splitName)
	}

	numFeatures := len(featureNames)
	X := mat.NewDense(len(dataRows), numFeatures, nil)
	Y := mat.NewVecDense(len(dataRows), nil)

	for i, record := range dataRows {
		if len(record) != len(header) {
			return nil, errors.NewSchemaError(path, "row "+strconv.Itoa(i+1)+" has "+strconv.Itoa(len(record))+" columns, expected "+strconv.Itoa(len(header)))
		}
		col := 0
		for j, val := range record {
			v, parseErr := strconv.ParseFloat(val, 64)
			if parseErr != nil {
				return nil, errors.NewSchemaError(path, "non-numeric value "+strconv.Quote(val)+" in row "+strconv.Itoa(i+1))
			}
			if j == labelIdx {
				Y.SetVec(i, v)
			} else {
				X.Set(i, col, v)
				col++
			}
		}
	}

	return &Split{Name: splitName, X: X, Y: Y, FeatureNames: featureNames}, nil
}

// TrainTestSplit shuffles rows with the given seed and partitions them into
// train and test sets, with testRatio (exclusive between 0 and 1) of the rows
// going to test. Both sides always receive at least one row.
func TrainTestSplit(X *mat.Dense, y *mat.VecDense, testRatio float64, seed int64) (XTrain, XTest *mat.Dense, yTrain, yTest *mat.VecDense, err error) {
	n, cols := X.Dims()
	if n != y.Len() {
		return nil, nil, nil, nil, errors.ErrLengthMismatch
	}
	if n < 2 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "need at least 2 samples to split, got "+strconv.Itoa(n))
	}
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, nil, nil, errors.NewValidationError("testRatio", "must be between 0 and 1 exclusive", testRatio)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	cut := int(float64(n) * (1.0 - testRatio))
	if cut < 1 {
		cut = 1
	}
	if cut >= n {
		cut = n - 1
	}

	XTrain = mat.NewDense(cut, cols, nil)
	yTrain = mat.NewVecDense(cut, nil)
	XTest = mat.NewDense(n-cut, cols, nil)
	yTest = mat.NewVecDense(n-cut, nil)

	for i, idx := range indices[:cut] {
		XTrain.SetRow(i, mat.Row(nil, idx, X))
		yTrain.SetVec(i, y.AtVec(idx))
	}
	for i, idx := range indices[cut:] {
		XTest.SetRow(i, mat.Row(nil, idx, X))
		yTest.SetVec(i, y.AtVec(idx))
	}

	return XTrain, XTest, yTrain, yTest, nil
}

// WriteCSV writes a split file with the feature columns followed by the
// label column, in the format Load expects back.
func WriteCSV(path string, featureNames []string, X *mat.Dense, y *mat.VecDense) error {
	rows, cols := X.Dims()
	if rows != y.Len() {
		return errors.ErrLengthMismatch
	}
	if cols != len(featureNames) {
		return errors.NewDimensionError("WriteCSV", len(featureNames), cols, 1)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.NewFileAccessError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append(slices.Clone(featureNames), LabelColumn)
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}

	record := make([]string, cols+1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(X.At(i, j), 'g', -1, 64)
		}
		record[cols] = strconv.FormatFloat(y.AtVec(i), 'g', -1, 64)
		if err := w.Write(record); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}
	return nil
}
