package ensemble

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ahmedaabouzied/boostoracle/core/parallel"
	"github.com/ahmedaabouzied/boostoracle/pkg/errors"
)

// scoringThreshold is the batch size below which rawScores stays sequential.
const scoringThreshold = 256

// boosterParams are the hyperparameters shared by the boosting estimators.
type boosterParams struct {
	NEstimators    int
	LearningRate   float64
	MaxDepth       int
	MinSamplesLeaf int
	Subsample      float64
	Seed           int64
}

func (p boosterParams) validate() error {
	switch {
	case p.NEstimators < 0:
		return errors.NewValidationError("NEstimators", "must be >= 0", p.NEstimators)
	case p.LearningRate <= 0:
		return errors.NewValidationError("LearningRate", "must be > 0", p.LearningRate)
	case p.MaxDepth < 1:
		return errors.NewValidationError("MaxDepth", "must be >= 1", p.MaxDepth)
	case p.MinSamplesLeaf < 1:
		return errors.NewValidationError("MinSamplesLeaf", "must be >= 1", p.MinSamplesLeaf)
	case p.Subsample <= 0 || p.Subsample > 1.0:
		return errors.NewValidationError("Subsample", "must be in (0, 1]", p.Subsample)
	}
	return nil
}

// booster is the boosting engine shared by the classifier and regressor:
// a constant initial prediction plus a shrunken sum of regression trees fit
// to the loss gradients.
type booster struct {
	params            boosterParams
	loss              lossFunction
	trees             []*node
	initialPrediction float64
	featureImportance []float64
	numFeatures       int
	rnd               *rand.Rand
}

func newBooster(params boosterParams, loss lossFunction) *booster {
	return &booster{params: params, loss: loss}
}

// fit runs the gradient boosting loop. X and y must already be validated.
func (b *booster) fit(X [][]float64, y []float64) error {
	if err := b.params.validate(); err != nil {
		return err
	}

	switch {
	case len(X) < 1:
		return errors.ErrEmptyData
	case len(X[0]) < 1:
		return errors.ErrEmptyFeatures
	case len(X) != len(y):
		return errors.ErrLengthMismatch
	}
	for _, row := range X {
		if len(row) != len(X[0]) {
			return errors.NewDimensionError("fit", len(X[0]), len(row), 1)
		}
	}

	// Reset state so refitting retrains from scratch.
	b.trees = nil
	b.numFeatures = len(X[0])
	b.rnd = rand.New(rand.NewSource(b.params.Seed))

	b.initialPrediction = b.loss.InitialPrediction(y)
	predictions := make([]float64, len(y))
	for i := range predictions {
		predictions[i] = b.initialPrediction
	}

	allIndices := make([]int, len(y))
	for i := range allIndices {
		allIndices[i] = i
	}

	for range b.params.NEstimators {
		trainIndices := allIndices
		if b.params.Subsample < 1.0 {
			trainIndices = b.sampleIndices(allIndices)
		}

		residuals := b.loss.NegativeGradient(y, predictions)
		hessians := b.loss.Hessian(y, predictions)
		tree := buildTree(X, residuals, hessians, trainIndices, 0, b.params.MaxDepth, b.params.MinSamplesLeaf)

		for j := range predictions {
			predictions[j] += b.params.LearningRate * tree.predict(X[j])
		}
		b.trees = append(b.trees, tree)
	}

	b.calculateFeatureImportance()
	return nil
}

// rawScore is the boosted prediction for one sample: the initial prediction
// plus the shrunken tree outputs. For the logistic loss this is a log-odds.
func (b *booster) rawScore(x []float64) float64 {
	score := b.initialPrediction
	for _, tree := range b.trees {
		score += b.params.LearningRate * tree.predict(x)
	}
	return score
}

// rawScores scores a batch of samples. Rows are independent and each worker
// writes only its own index range, so the result is identical to a
// sequential loop.
func (b *booster) rawScores(X [][]float64) []float64 {
	scores := make([]float64, len(X))
	parallel.ForWithThreshold(len(X), scoringThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			scores[i] = b.rawScore(X[i])
		}
	})
	return scores
}

// sampleIndices draws a subsample of size Subsample*n without replacement.
func (b *booster) sampleIndices(indices []int) []int {
	n := len(indices)
	sampleSize := int(float64(n) * b.params.Subsample)
	shuffled := make([]int, n)
	copy(shuffled, indices)
	b.rnd.Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:sampleSize]
}

func (b *booster) calculateFeatureImportance() {
	res := make([]float64, b.numFeatures)
	for _, tree := range b.trees {
		tree.collectGains(res)
	}
	if total := floats.Sum(res); total != 0 {
		floats.Scale(1/total, res)
	}
	b.featureImportance = res
}

// matrixToRows copies a gonum matrix into row-major slices.
func matrixToRows(X mat.Matrix) [][]float64 {
	rows, cols := X.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = X.At(i, j)
		}
		out[i] = row
	}
	return out
}

// columnToSlice copies a single-column matrix into a slice.
func columnToSlice(y mat.Matrix) []float64 {
	rows, _ := y.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = y.At(i, 0)
	}
	return out
}
