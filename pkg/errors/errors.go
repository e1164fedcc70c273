// Package errors provides the structured error types used across the parity
// oracle. Every constructor attaches a stack trace via cockroachdb/errors so
// failures surface with full context, and each error type implements
// zerolog.LogObjectMarshaler for structured log output.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Pipeline error types
//
// ===========================================================================

// FileAccessError indicates that an input directory or file is missing or
// unreadable. It is fatal: the run aborts without producing output.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("boostoracle: cannot access %q: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *FileAccessError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		AnErr("cause", e.Err).
		Str("type", "FileAccessError")
}

// NewFileAccessError creates a FileAccessError with a stack trace.
func NewFileAccessError(path string, err error) error {
	return errors.WithStack(&FileAccessError{Path: path, Err: err})
}

// SchemaError indicates that a dataset file does not match the expected
// schema: the label column is absent, a row is malformed, a value is not
// numeric, or the train and test feature columns disagree.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("boostoracle: schema error in %q: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("boostoracle: schema error: %s", e.Reason)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *SchemaError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Str("reason", e.Reason).
		Str("type", "SchemaError")
}

// NewSchemaError creates a SchemaError with a stack trace.
func NewSchemaError(path, reason string) error {
	return errors.WithStack(&SchemaError{Path: path, Reason: reason})
}

// EmptySplitError indicates that a dataset split has zero rows. Accuracy is
// undefined on an empty split, so the pipeline fails instead of emitting NaN.
type EmptySplitError struct {
	Split string
}

func (e *EmptySplitError) Error() string {
	return fmt.Sprintf("boostoracle: split %q has no rows", e.Split)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *EmptySplitError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("split", e.Split).
		Str("type", "EmptySplitError")
}

// NewEmptySplitError creates an EmptySplitError with a stack trace.
func NewEmptySplitError(split string) error {
	return errors.WithStack(&EmptySplitError{Split: split})
}

// ===========================================================================
//
//	Estimator error types
//
// ===========================================================================

// NotFittedError is returned when Predict or PredictProba is called on a
// model before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("boostoracle: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// DimensionError is returned when input data has a different shape than the
// operation expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("boostoracle: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError is returned when a hyperparameter or input value fails
// validation, e.g. a non-binary label vector passed to the classifier.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("boostoracle: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError is returned when an argument value is invalid for an operation,
// e.g. an empty vector passed to a metric.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("boostoracle: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError wraps a failure inside the classifier itself, surfaced as-is to
// the caller. Kind names the failure class, e.g. "fit failure".
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("boostoracle: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("boostoracle: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ModelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("kind", e.Kind).
		AnErr("cause", e.Err).
		Str("type", "ModelError")
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no data.
	ErrEmptyData = New("empty data")

	// ErrEmptyFeatures is returned when samples carry zero feature columns.
	ErrEmptyFeatures = New("empty features")

	// ErrLengthMismatch is returned when a feature matrix and label vector
	// disagree on row count.
	ErrLengthMismatch = New("mismatch length of input matrix")
)
