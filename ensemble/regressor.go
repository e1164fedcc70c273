package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ahmedaabouzied/boostoracle/core/model"
	"github.com/ahmedaabouzied/boostoracle/metrics"
	"github.com/ahmedaabouzied/boostoracle/pkg/errors"
	"github.com/ahmedaabouzied/boostoracle/pkg/log"
)

// GradientBoostingRegressor is the regression counterpart of
// GradientBoostingClassifier, boosting on squared error. It shares the same
// tree builder and is not part of the parity report; it exists because the
// booster supports both losses.
type GradientBoostingRegressor struct {
	model.BaseEstimator

	NEstimators    int
	LearningRate   float64
	MaxDepth       int
	MinSamplesLeaf int
	Subsample      float64
	RandomState    int64

	booster    *booster
	nFeatures_ int
}

// NewGradientBoostingRegressor creates a regressor with defaults matching
// the original library: 100 trees, learning rate 0.1, depth 6.
func NewGradientBoostingRegressor() *GradientBoostingRegressor {
	return &GradientBoostingRegressor{
		NEstimators:    100,
		LearningRate:   0.1,
		MaxDepth:       6,
		MinSamplesLeaf: 1,
		Subsample:      1.0,
		RandomState:    0,
	}
}

// WithNEstimators sets the number of boosting rounds.
func (r *GradientBoostingRegressor) WithNEstimators(n int) *GradientBoostingRegressor {
	r.NEstimators = n
	return r
}

// WithLearningRate sets the shrinkage rate.
func (r *GradientBoostingRegressor) WithLearningRate(lr float64) *GradientBoostingRegressor {
	r.LearningRate = lr
	return r
}

// WithMaxDepth sets the maximum tree depth.
func (r *GradientBoostingRegressor) WithMaxDepth(d int) *GradientBoostingRegressor {
	r.MaxDepth = d
	return r
}

// Fit trains the regressor on X and continuous targets y (one column).
func (r *GradientBoostingRegressor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "GradientBoostingRegressor.Fit")

	rows, cols := X.Dims()
	yRows, yCols := y.Dims()
	if rows != yRows {
		return errors.NewDimensionError("Fit", rows, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewDimensionError("Fit", 1, yCols, 1)
	}

	logger := log.GetLoggerWithName("ensemble")
	logger.Debug("training gradient boosting regressor",
		log.ModelNameKey, "GradientBoostingRegressor",
		log.OperationKey, "fit",
		log.SamplesKey, rows,
		log.FeaturesKey, cols)

	b := newBooster(boosterParams{
		NEstimators:    r.NEstimators,
		LearningRate:   r.LearningRate,
		MaxDepth:       r.MaxDepth,
		MinSamplesLeaf: r.MinSamplesLeaf,
		Subsample:      r.Subsample,
		Seed:           r.RandomState,
	}, squaredLoss{})

	if err := b.fit(matrixToRows(X), columnToSlice(y)); err != nil {
		return err
	}

	r.booster = b
	r.nFeatures_ = cols
	r.SetFitted()
	return nil
}

// Predict returns predicted target values as an (n, 1) matrix.
func (r *GradientBoostingRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("GradientBoostingRegressor", "Predict")
	}
	rows, cols := X.Dims()
	if cols != r.nFeatures_ {
		return nil, errors.NewDimensionError("Predict", r.nFeatures_, cols, 1)
	}

	out := mat.NewDense(rows, 1, nil)
	for i, score := range r.booster.rawScores(matrixToRows(X)) {
		out.Set(i, 0, score)
	}
	return out, nil
}

// Score returns the coefficient of determination R^2 on X, y.
func (r *GradientBoostingRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("GradientBoostingRegressor", "Score")
	}

	predictions, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	rows, _ := y.Dims()
	yVec := mat.NewVecDense(rows, nil)
	predVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
		predVec.SetVec(i, predictions.At(i, 0))
	}
	return metrics.R2Score(yVec, predVec)
}

// FeatureImportances returns per-feature gain-based importance scores,
// normalized to sum to 1. Returns an empty slice before fitting.
func (r *GradientBoostingRegressor) FeatureImportances() []float64 {
	if !r.IsFitted() {
		return []float64{}
	}
	return r.booster.featureImportance
}
