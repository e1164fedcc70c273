package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracyScore(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{
			name:  "perfect",
			yTrue: []float64{0, 1, 1, 0},
			yPred: []float64{0, 1, 1, 0},
			want:  1.0,
		},
		{
			name:  "all wrong",
			yTrue: []float64{0, 1, 1, 0},
			yPred: []float64{1, 0, 0, 1},
			want:  0.0,
		},
		{
			name:  "three of four",
			yTrue: []float64{0, 1, 1, 0},
			yPred: []float64{0, 1, 1, 1},
			want:  0.75,
		},
		{
			name:  "single row",
			yTrue: []float64{1},
			yPred: []float64{1},
			want:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AccuracyScore(
				mat.NewVecDense(len(tt.yTrue), tt.yTrue),
				mat.NewVecDense(len(tt.yPred), tt.yPred),
			)
			if err != nil {
				t.Fatalf("AccuracyScore failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("AccuracyScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccuracyScoreLengthMismatch(t *testing.T) {
	a := mat.NewVecDense(3, []float64{0, 1, 0})
	b := mat.NewVecDense(2, []float64{0, 1})
	if _, err := AccuracyScore(a, b); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestLogLoss(t *testing.T) {
	yTrue := mat.NewVecDense(2, []float64{1, 0})
	proba := mat.NewVecDense(2, []float64{0.8, 0.2})

	got, err := LogLoss(yTrue, proba)
	if err != nil {
		t.Fatalf("LogLoss failed: %v", err)
	}
	want := -math.Log(0.8) // both terms contribute -log(0.8)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("LogLoss = %v, want %v", got, want)
	}
}

func TestLogLossClipsExtremes(t *testing.T) {
	yTrue := mat.NewVecDense(2, []float64{1, 0})
	proba := mat.NewVecDense(2, []float64{0, 1})

	got, err := LogLoss(yTrue, proba)
	if err != nil {
		t.Fatalf("LogLoss failed: %v", err)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("LogLoss = %v, want finite after clipping", got)
	}
}

func TestLogLossRejectsBadLabels(t *testing.T) {
	yTrue := mat.NewVecDense(1, []float64{2})
	proba := mat.NewVecDense(1, []float64{0.5})
	if _, err := LogLoss(yTrue, proba); err == nil {
		t.Error("expected error for non-binary label")
	}
}
