// Package metrics provides the evaluation metrics used by the parity oracle.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ahmedaabouzied/boostoracle/pkg/errors"
)

// AccuracyScore returns the fraction of rows where yPred equals yTrue.
// The result is in [0, 1]. An empty vector is an error: accuracy over zero
// rows is undefined and must not silently become NaN.
func AccuracyScore(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("AccuracyScore", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("AccuracyScore", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// LogLoss returns the mean binary cross-entropy between true labels (0 or 1)
// and predicted positive-class probabilities. Probabilities are clipped away
// from 0 and 1 for numerical stability.
func LogLoss(yTrue, proba *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("LogLoss", "empty vector")
	}
	if proba.Len() != n {
		return 0, errors.NewDimensionError("LogLoss", n, proba.Len(), 0)
	}

	var loss float64
	for i := 0; i < n; i++ {
		label := yTrue.AtVec(i)
		if label != 0 && label != 1 {
			return 0, errors.NewValueError("LogLoss", "labels must be 0 or 1")
		}
		p := proba.AtVec(i)
		p = math.Max(1e-15, math.Min(1-1e-15, p))
		if label == 1 {
			loss -= math.Log(p)
		} else {
			loss -= math.Log(1 - p)
		}
	}
	return loss / float64(n), nil
}
