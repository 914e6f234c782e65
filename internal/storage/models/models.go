package models

import "time"

// Run is one stored cross-validation run of a single configuration.
type Run struct {
	ID              string
	DatasetHash     string
	Records         int
	Seed            int64
	Folds           int
	Binned          bool
	PrecisionMean   float64
	PrecisionSpread float64
	RecallMean      float64
	RecallSpread    float64
	CreatedAt       time.Time
}

// FoldMetric is one fold's held-out score within a run.
type FoldMetric struct {
	ID            int
	RunID         string
	FoldIndex     int
	TrainExamples int
	TestExamples  int
	Precision     float64
	Recall        float64
}
