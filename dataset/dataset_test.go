package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ahmedaabouzied/boostoracle/pkg/errors"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const trainFixture = `sepal_length,sepal_width,petal_length,petal_width,label
5.1,3.5,1.4,0.2,0
4.9,3.0,1.4,0.2,0
6.4,3.2,4.5,1.5,1
6.9,3.1,4.9,1.5,1
`

const testFixture = `sepal_length,sepal_width,petal_length,petal_width,label
5.0,3.6,1.4,0.2,0
6.5,2.8,4.6,1.5,1
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, TrainFile, trainFixture)
	writeFixture(t, dir, TestFile, testFixture)

	train, test, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if train.NumRows() != 4 || train.NumFeatures() != 4 {
		t.Errorf("train shape = (%d, %d), want (4, 4)", train.NumRows(), train.NumFeatures())
	}
	if test.NumRows() != 2 || test.NumFeatures() != 4 {
		t.Errorf("test shape = (%d, %d), want (2, 4)", test.NumRows(), test.NumFeatures())
	}
	if train.Name != "train" || test.Name != "test" {
		t.Errorf("split names = %q, %q", train.Name, test.Name)
	}

	wantFeatures := []string{"sepal_length", "sepal_width", "petal_length", "petal_width"}
	for i, name := range wantFeatures {
		if train.FeatureNames[i] != name {
			t.Errorf("feature[%d] = %q, want %q", i, train.FeatureNames[i], name)
		}
	}

	if got := train.X.At(0, 0); got != 5.1 {
		t.Errorf("train.X[0][0] = %v, want 5.1", got)
	}
	if got := train.Y.AtVec(2); got != 1.0 {
		t.Errorf("train.Y[2] = %v, want 1", got)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	var fileErr *errors.FileAccessError
	if !errors.As(err, &fileErr) {
		t.Errorf("expected *FileAccessError, got %T: %v", err, err)
	}
}

func TestLoadMissingTestFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, TrainFile, trainFixture)

	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for missing test file")
	}
	var fileErr *errors.FileAccessError
	if !errors.As(err, &fileErr) {
		t.Errorf("expected *FileAccessError, got %T: %v", err, err)
	}
}

func TestLoadFeatureMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, TrainFile, trainFixture)
	writeFixture(t, dir, TestFile, "a,b,label\n1,2,0\n3,4,1\n")

	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for mismatched feature columns")
	}
	var schemaErr *errors.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Errorf("expected *SchemaError, got %T: %v", err, err)
	}
}

func TestLoadFileSchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"missing label column", "a,b,c\n1,2,3\n"},
		{"ragged row", "a,b,label\n1,2,0\n1,2\n"},
		{"non-numeric value", "a,b,label\n1,oops,0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFixture(t, dir, TrainFile, tt.content)

			_, err := LoadFile(filepath.Join(dir, TrainFile), "train")
			if err == nil {
				t.Fatal("expected schema error, got nil")
			}
			var schemaErr *errors.SchemaError
			if !errors.As(err, &schemaErr) {
				t.Errorf("expected *SchemaError, got %T: %v", err, err)
			}
		})
	}
}

func TestLoadFileEmptySplit(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, TestFile, "a,b,label\n")

	_, err := LoadFile(filepath.Join(dir, TestFile), "test")
	if err == nil {
		t.Fatal("expected error for header-only file")
	}
	var emptyErr *errors.EmptySplitError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected *EmptySplitError, got %T: %v", err, err)
	}
	if emptyErr.Split != "test" {
		t.Errorf("Split = %q, want %q", emptyErr.Split, "test")
	}
}

func TestLoadFileLabelColumnOrder(t *testing.T) {
	// The label column does not have to be last.
	dir := t.TempDir()
	writeFixture(t, dir, TrainFile, "label,a,b\n1,10,20\n0,30,40\n")

	split, err := LoadFile(filepath.Join(dir, TrainFile), "train")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if split.Y.AtVec(0) != 1 || split.Y.AtVec(1) != 0 {
		t.Errorf("labels = [%v %v], want [1 0]", split.Y.AtVec(0), split.Y.AtVec(1))
	}
	if split.X.At(0, 0) != 10 || split.X.At(1, 1) != 40 {
		t.Errorf("features misaligned: %v", mat.Formatted(split.X))
	}
}

func TestTrainTestSplit(t *testing.T) {
	n := 10
	X := mat.NewDense(n, 2, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		X.Set(i, 1, float64(i)*10)
		y.SetVec(i, float64(i))
	}

	XTrain, XTest, yTrain, yTest, err := TrainTestSplit(X, y, 0.2, 42)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}

	trainRows, _ := XTrain.Dims()
	testRows, _ := XTest.Dims()
	if trainRows != 8 || testRows != 2 {
		t.Errorf("split sizes = (%d, %d), want (8, 2)", trainRows, testRows)
	}
	if yTrain.Len() != trainRows || yTest.Len() != testRows {
		t.Error("label vectors not aligned with feature matrices")
	}

	// Rows must stay aligned with their labels through the shuffle.
	for i := 0; i < trainRows; i++ {
		if XTrain.At(i, 0) != yTrain.AtVec(i) {
			t.Errorf("train row %d misaligned: feature %v, label %v", i, XTrain.At(i, 0), yTrain.AtVec(i))
		}
	}
	for i := 0; i < testRows; i++ {
		if XTest.At(i, 0) != yTest.AtVec(i) {
			t.Errorf("test row %d misaligned: feature %v, label %v", i, XTest.At(i, 0), yTest.AtVec(i))
		}
	}
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	n := 20
	X := mat.NewDense(n, 1, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		y.SetVec(i, float64(i))
	}

	_, first, _, _, err := TrainTestSplit(X, y, 0.25, 7)
	if err != nil {
		t.Fatal(err)
	}
	_, second, _, _, err := TrainTestSplit(X, y, 0.25, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(first, second) {
		t.Error("same seed produced different splits")
	}
}

func TestTrainTestSplitValidation(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	if _, _, _, _, err := TrainTestSplit(X, y, 0, 1); err == nil {
		t.Error("expected error for testRatio = 0")
	}
	if _, _, _, _, err := TrainTestSplit(X, y, 1, 1); err == nil {
		t.Error("expected error for testRatio = 1")
	}

	one := mat.NewDense(1, 1, []float64{1})
	oneY := mat.NewVecDense(1, []float64{1})
	if _, _, _, _, err := TrainTestSplit(one, oneY, 0.5, 1); err == nil {
		t.Error("expected error for single sample")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TrainFile)

	X := mat.NewDense(3, 2, []float64{5.1, 3.5, 4.9, 3.0, 6.4, 3.2})
	y := mat.NewVecDense(3, []float64{0, 0, 1})
	names := []string{"sepal_length", "sepal_width"}

	if err := WriteCSV(path, names, X, y); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	split, err := LoadFile(path, "train")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !mat.Equal(split.X, X) {
		t.Errorf("features changed through round trip:\ngot %v\nwant %v", mat.Formatted(split.X), mat.Formatted(X))
	}
	if !mat.Equal(split.Y, y) {
		t.Errorf("labels changed through round trip: got %v, want %v", split.Y.RawVector().Data, y.RawVector().Data)
	}
	if len(split.FeatureNames) != 2 || split.FeatureNames[0] != "sepal_length" {
		t.Errorf("feature names = %v", split.FeatureNames)
	}
}
