// Package model defines the capability interfaces the parity oracle requires
// from a classifier. The harness depends only on these interfaces, so the
// implementation under parity test can be swapped in behind the same
// boundary as the bundled reference classifier.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is a model that can be trained.
type Fitter interface {
	// Fit trains the model on the feature matrix X and label vector y.
	Fit(X, y mat.Matrix) error
}

// Predictor is a model that can produce predictions.
type Predictor interface {
	// Predict returns one prediction per row of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}
