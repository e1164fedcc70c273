// Standard attribute keys for pipeline logging. Using the same keys across
// the loader, the classifier, and the scorer keeps the stderr log stream
// filterable per run stage.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the classifier type, e.g. "GradientBoostingClassifier".
	ModelNameKey = "model.name"

	// OperationKey names the operation: "fit", "predict", "predict_proba", "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of rows in the data being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"

	// SplitKey names the dataset split: "train" or "test".
	SplitKey = "data.split"

	// DataDirKey is the directory the split files were loaded from.
	DataDirKey = "data.dir"
)

// Results.
const (
	// AccuracyKey reports a computed accuracy value.
	AccuracyKey = "metric.accuracy"

	// DurationMsKey reports elapsed wall time in milliseconds.
	DurationMsKey = "duration.ms"
)
