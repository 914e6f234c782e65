package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wejradford/spamcv/internal/classifier"
	"github.com/wejradford/spamcv/internal/classifier/fasttext"
	"github.com/wejradford/spamcv/internal/crossval"
	"github.com/wejradford/spamcv/internal/dataset"
	"github.com/wejradford/spamcv/internal/metrics"
	"github.com/wejradford/spamcv/internal/storage/models"
	"github.com/wejradford/spamcv/internal/storage/sqlite"
	"github.com/wejradford/spamcv/pkg/config"
	appLogger "github.com/wejradford/spamcv/pkg/logger"
	"github.com/wejradford/spamcv/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting spam comment cross-validation experiment")

	metrics.Init()
	if cfg.Metrics.Enabled {
		metrics.Serve(cfg.Metrics.Addr)
	}

	if err := run(cfg); err != nil {
		metrics.RunsTotal.WithLabelValues("error").Inc()
		appLogger.Fatal("Experiment failed", zap.Error(err))
	}
	metrics.RunsTotal.WithLabelValues("ok").Inc()
}

func run(cfg *config.Config) error {
	store, err := sqlite.NewClient(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("failed to create results store: %w", err)
	}
	defer store.Close()

	if err := store.InitSchema(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	loader := dataset.NewLoader(cfg.Dataset.Seed, cfg.Dataset.CleanHTML)
	records, paths, err := loader.Load(cfg.Dataset.Paths)
	if err != nil {
		return err
	}
	metrics.RecordsLoaded.Add(float64(len(records)))

	datasetHash, err := utils.HashFiles(paths)
	if err != nil {
		return err
	}

	if cfg.Dataset.Stats {
		if _, err := dataset.CorpusStats(records); err != nil {
			return err
		}
	}

	trainer := fasttext.NewTrainer(cfg.Classifier.Binary,
		time.Duration(cfg.Classifier.TimeoutSec)*time.Second)
	params := classifier.Hyperparams{
		Epochs:     cfg.Classifier.Epochs,
		LR:         cfg.Classifier.LR,
		WordNgrams: cfg.Classifier.WordNgrams,
		MinCount:   cfg.Classifier.MinCount,
		Verbose:    cfg.Classifier.Verbose,
	}
	runner := crossval.NewRunner(trainer, params, cfg.CrossVal.Folds)

	ctx := context.Background()
	var rows []string

	// Both configurations run against the same shuffle so the comparison
	// isolates the binned features.
	for _, binned := range []bool{false, true} {
		summary, err := runner.Run(ctx, records, binned)
		if err != nil {
			return err
		}

		if err := persist(store, cfg, datasetHash, summary); err != nil {
			return err
		}

		rows = append(rows, summary.ReportRow())
	}

	fmt.Println(crossval.ReportHeader)
	for _, row := range rows {
		fmt.Println(row)
	}

	return nil
}

func persist(store *sqlite.Client, cfg *config.Config, datasetHash string, summary *crossval.Summary) error {
	run := &models.Run{
		ID:              uuid.New().String(),
		DatasetHash:     datasetHash,
		Records:         summary.Records,
		Seed:            cfg.Dataset.Seed,
		Folds:           cfg.CrossVal.Folds,
		Binned:          summary.Binned,
		PrecisionMean:   summary.PrecisionMean,
		PrecisionSpread: summary.PrecisionSpread,
		RecallMean:      summary.RecallMean,
		RecallSpread:    summary.RecallSpread,
		CreatedAt:       time.Now(),
	}

	if err := store.InsertRun(run); err != nil {
		return err
	}
	for _, fold := range summary.Folds {
		m := &models.FoldMetric{
			RunID:         run.ID,
			FoldIndex:     fold.Fold,
			TrainExamples: fold.TrainExamples,
			TestExamples:  fold.TestExamples,
			Precision:     fold.Precision,
			Recall:        fold.Recall,
		}
		if err := store.InsertFoldMetric(m); err != nil {
			return err
		}
	}

	appLogger.Info("Run stored",
		zap.String("run_id", run.ID),
		zap.Bool("binned", run.Binned),
		zap.Float64("precision_mean", run.PrecisionMean),
		zap.Float64("recall_mean", run.RecallMean),
	)

	return nil
}
