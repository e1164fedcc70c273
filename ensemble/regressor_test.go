package ensemble

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRegressorFitPredictLinear(t *testing.T) {
	// y = 2x, enough depth and rounds to memorize it.
	X := mat.NewDense(10, 1, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	y := mat.NewDense(10, 1, []float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20})

	reg := NewGradientBoostingRegressor().WithNEstimators(50)
	if err := reg.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	pred, err := reg.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	rows, cols := pred.Dims()
	if rows != 10 || cols != 1 {
		t.Fatalf("Predict dims = (%d, %d), want (10, 1)", rows, cols)
	}
	for i := 0; i < rows; i++ {
		if diff := math.Abs(pred.At(i, 0) - y.At(i, 0)); diff > 0.5 {
			t.Errorf("pred[%d] = %v, want close to %v", i, pred.At(i, 0), y.At(i, 0))
		}
	}
}

func TestRegressorZeroEstimators(t *testing.T) {
	// With no trees the prediction is the target mean.
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{10, 20, 30, 40})

	reg := NewGradientBoostingRegressor().WithNEstimators(0)
	if err := reg.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	pred, err := reg.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if pred.At(i, 0) != 25.0 {
			t.Errorf("pred[%d] = %v, want 25.0 (target mean)", i, pred.At(i, 0))
		}
	}
}

func TestRegressorScore(t *testing.T) {
	X := mat.NewDense(20, 1, nil)
	y := mat.NewDense(20, 1, nil)
	for i := 0; i < 20; i++ {
		X.Set(i, 0, float64(i))
		y.Set(i, 0, 3*float64(i)+1)
	}

	reg := NewGradientBoostingRegressor().WithNEstimators(80)
	if err := reg.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	score, err := reg.Score(X, y)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score < 0.95 {
		t.Errorf("R^2 = %v, want >= 0.95 on training data", score)
	}
}

func TestRegressorNotFitted(t *testing.T) {
	reg := NewGradientBoostingRegressor()
	X := mat.NewDense(2, 1, nil)

	if _, err := reg.Predict(X); err == nil {
		t.Error("expected NotFittedError from Predict")
	}
	if _, err := reg.Score(X, X); err == nil {
		t.Error("expected NotFittedError from Score")
	}
}

func TestRegressorEmptyData(t *testing.T) {
	X := mat.NewDense(1, 1, nil)
	y := mat.NewDense(2, 1, nil)

	if err := NewGradientBoostingRegressor().Fit(X, y); err == nil {
		t.Error("expected dimension error for mismatched rows")
	}
}
