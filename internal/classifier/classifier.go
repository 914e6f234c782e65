// Package classifier defines the capability interface the cross-validation
// runner consumes. Any supervised text classifier that trains from a
// label-prefixed text file and reports precision/recall at top-1 can sit
// behind it.
package classifier

import (
	"context"
	"errors"
)

// ErrClassifier reports a failure of the external trainer or evaluator,
// including unparseable evaluator output.
var ErrClassifier = errors.New("classifier failure")

// Hyperparams are the recognized training options.
type Hyperparams struct {
	Epochs     int
	LR         float64
	WordNgrams int
	MinCount   int
	Verbose    int
}

// Score is the result of evaluating a model against a held-out file.
type Score struct {
	Examples     int
	PrecisionAt1 float64
	RecallAt1    float64
}

// Trainer trains a model from a formatted training file.
type Trainer interface {
	Train(ctx context.Context, inputPath string, params Hyperparams) (Model, error)
}

// Model scores a formatted test file at top-1 prediction.
type Model interface {
	Test(ctx context.Context, inputPath string) (Score, error)
}
