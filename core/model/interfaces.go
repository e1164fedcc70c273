package model

import "gonum.org/v1/gonum/mat"

// Classifier is the capability set the pipeline requires from a supervised
// classifier: train once, then query class labels and class probabilities.
type Classifier interface {
	Fitter
	Predictor

	// PredictProba returns an (n_samples, n_classes) matrix of class
	// probabilities. Column order matches Classes(); for a binary
	// classifier column 1 is the positive-class probability.
	PredictProba(X mat.Matrix) (mat.Matrix, error)

	// Classes returns the class labels seen during fitting, in the order
	// used by Predict and PredictProba columns.
	Classes() []int
}
