// Package crossval runs k-fold cross-validation of the external classifier
// over a shuffled record sequence and aggregates per-fold scores.
package crossval

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/wejradford/spamcv/internal/classifier"
	"github.com/wejradford/spamcv/internal/dataset"
	"github.com/wejradford/spamcv/internal/features"
	"github.com/wejradford/spamcv/internal/metrics"
	"github.com/wejradford/spamcv/pkg/logger"
)

type Runner struct {
	trainer classifier.Trainer
	params  classifier.Hyperparams
	folds   int
}

// FoldScore is one fold's held-out evaluation.
type FoldScore struct {
	Fold          int
	TrainExamples int
	TestExamples  int
	Precision     float64
	Recall        float64
}

// Summary is the aggregated outcome of one configuration's full run.
type Summary struct {
	Binned          bool
	Records         int
	Folds           []FoldScore
	PrecisionMean   float64
	PrecisionSpread float64
	RecallMean      float64
	RecallSpread    float64
}

func NewRunner(trainer classifier.Trainer, params classifier.Hyperparams, folds int) *Runner {
	return &Runner{trainer: trainer, params: params, folds: folds}
}

// Run cross-validates one configuration. Each fold writes its train and test
// files under a scoped temp directory (distinct names per fold, removed when
// the run ends), trains, and scores against the held-out file. Folds run
// sequentially; any trainer or evaluator failure aborts the whole run.
func (r *Runner) Run(ctx context.Context, records []dataset.Record, includeBinned bool) (*Summary, error) {
	if len(records) < r.folds {
		return nil, fmt.Errorf("%w: %d records cannot fill %d folds",
			classifier.ErrClassifier, len(records), r.folds)
	}

	dir, err := os.MkdirTemp("", "spamcv-run-")
	if err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}
	defer os.RemoveAll(dir)

	binnedLabel := strconv.FormatBool(includeBinned)
	testSets := Partition(len(records), r.folds)
	summary := &Summary{Binned: includeBinned, Records: len(records)}

	var precisions, recalls []float64

	for fold, testIdx := range testSets {
		trainIdx := trainIndices(len(records), testIdx)
		if len(trainIdx) == 0 || len(testIdx) == 0 {
			return nil, fmt.Errorf("%w: fold %d has an empty subset (train=%d test=%d)",
				classifier.ErrClassifier, fold, len(trainIdx), len(testIdx))
		}

		trainPath := filepath.Join(dir, fmt.Sprintf("train_%03d.txt", fold))
		testPath := filepath.Join(dir, fmt.Sprintf("test_%03d.txt", fold))

		_, trainLabels, err := features.WriteSubset(subset(records, trainIdx), trainPath, includeBinned)
		if err != nil {
			return nil, err
		}
		if _, _, err := features.WriteSubset(subset(records, testIdx), testPath, includeBinned); err != nil {
			return nil, err
		}

		start := time.Now()
		model, err := r.trainer.Train(ctx, trainPath, r.params)
		if err != nil {
			return nil, err
		}
		metrics.TrainDuration.WithLabelValues(binnedLabel).Observe(time.Since(start).Seconds())

		start = time.Now()
		score, err := model.Test(ctx, testPath)
		if err != nil {
			return nil, err
		}
		metrics.TestDuration.WithLabelValues(binnedLabel).Observe(time.Since(start).Seconds())
		metrics.FoldsCompleted.WithLabelValues(binnedLabel).Inc()

		logger.Info("Fold scored",
			zap.Int("fold", fold),
			zap.Bool("binned", includeBinned),
			zap.Int("train", len(trainIdx)),
			zap.Int("test", score.Examples),
			zap.Float64("precision", score.PrecisionAt1),
			zap.Float64("recall", score.RecallAt1),
			zap.Any("train_labels", trainLabels),
		)

		summary.Folds = append(summary.Folds, FoldScore{
			Fold:          fold,
			TrainExamples: len(trainIdx),
			TestExamples:  score.Examples,
			Precision:     score.PrecisionAt1,
			Recall:        score.RecallAt1,
		})
		precisions = append(precisions, score.PrecisionAt1)
		recalls = append(recalls, score.RecallAt1)
	}

	if summary.PrecisionMean, summary.PrecisionSpread, err = Aggregate(precisions); err != nil {
		return nil, err
	}
	if summary.RecallMean, summary.RecallSpread, err = Aggregate(recalls); err != nil {
		return nil, err
	}

	return summary, nil
}

func subset(records []dataset.Record, indices []int) []dataset.Record {
	out := make([]dataset.Record, 0, len(indices))
	for _, idx := range indices {
		out = append(out, records[idx])
	}
	return out
}
