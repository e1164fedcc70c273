// Package ensemble implements gradient boosting machines over depth-limited
// regression trees.
//
// GradientBoostingClassifier is the reference collaborator for the parity
// oracle: a binary classifier with Newton-Raphson optimized leaf values on
// the logistic loss, deterministic for a fixed seed. GradientBoostingRegressor
// boosts on squared error with the same tree builder.
//
// Train a classifier:
//
//	clf := ensemble.NewGradientBoostingClassifier()
//	if err := clf.Fit(X, y); err != nil { // y values must be 0 or 1
//		return err
//	}
//	proba, err := clf.PredictProba(XTest)
package ensemble
