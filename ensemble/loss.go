package ensemble

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// lossFunction supplies the quantities gradient boosting needs from a loss:
// the optimal constant starting prediction, first-order gradients, and
// second-order Hessians for Newton-Raphson leaf values.
type lossFunction interface {
	// InitialPrediction returns the optimal constant prediction for y.
	InitialPrediction(y []float64) float64

	// NegativeGradient returns the pseudo-residuals each tree fits.
	NegativeGradient(y, pred []float64) []float64

	// Hessian returns the second derivative of the loss per sample.
	// Leaf values are sum(gradient) / sum(hessian).
	Hessian(y, pred []float64) []float64
}

// squaredLoss is mean squared error for regression. The negative gradient is
// the residual y - F and the Hessian is constant 1.
type squaredLoss struct{}

func (l squaredLoss) InitialPrediction(y []float64) float64 {
	return mean(y)
}

func (l squaredLoss) NegativeGradient(y, pred []float64) []float64 {
	res := make([]float64, len(y))
	for i := range y {
		res[i] = y[i] - pred[i]
	}
	return res
}

func (l squaredLoss) Hessian(y, pred []float64) []float64 {
	res := make([]float64, len(y))
	for i := range res {
		res[i] = 1.0
	}
	return res
}

// logisticLoss is binary cross-entropy on raw log-odds scores F, with
// p = sigmoid(F). The Hessian p*(1-p) weights uncertain samples more heavily
// in the Newton-Raphson leaf update, which keeps probabilities calibrated.
type logisticLoss struct{}

func (l logisticLoss) InitialPrediction(y []float64) float64 {
	p := mean(y)
	p = math.Max(0.001, math.Min(0.999, p)) // clip to safe range
	return math.Log(p / (1 - p))
}

func (l logisticLoss) NegativeGradient(y, pred []float64) []float64 {
	res := make([]float64, len(y))
	for i := range y {
		res[i] = y[i] - sigmoid(pred[i])
	}
	return res
}

func (l logisticLoss) Hessian(y, pred []float64) []float64 {
	res := make([]float64, len(y))
	for i := range y {
		p := sigmoid(pred[i])
		res[i] = p * (1 - p)
	}
	return res
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return floats.Sum(data) / float64(len(data))
}
