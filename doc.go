// Package boostoracle is a parity-verification harness for gradient boosting
// implementations.
//
// The oracle pipeline trains a reference gradient-boosted binary classifier
// on a fixed train/test CSV pair with pinned hyperparameters (100 trees,
// learning rate 0.1, max depth 3, min samples per leaf 1, no subsampling,
// seed 42) and emits a deterministic JSON report of test probabilities, test
// predictions, and train/test accuracy. Another implementation can be run on
// the same inputs and compared against this output for numerical and
// behavioral parity.
//
// # Running the oracle
//
//	oracle --data-dir data
//
// reads data/iris_train.csv and data/iris_test.csv (header row required,
// label column named "label", all other columns numeric features) and prints
// one JSON object on stdout:
//
//	{"test_probabilities":[...],"test_predictions":[...],"test_accuracy":0.93,"train_accuracy":1.0}
//
// # Swapping the classifier
//
// The pipeline depends only on the model.Classifier capability set (Fit,
// Predict, PredictProba, Classes), so the implementation under parity test
// can be evaluated through the identical pipeline:
//
//	report, err := oracle.Run("data", myClassifier)
package boostoracle
