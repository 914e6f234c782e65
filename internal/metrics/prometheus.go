package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wejradford/spamcv/pkg/logger"
)

var (
	RecordsLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spamcv_records_loaded_total",
			Help: "Total dataset records loaded",
		},
	)

	FoldsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spamcv_folds_completed_total",
			Help: "Cross-validation folds completed",
		},
		[]string{"binned"},
	)

	TrainDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spamcv_train_duration_seconds",
			Help:    "Per-fold training duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"binned"},
	)

	TestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spamcv_test_duration_seconds",
			Help:    "Per-fold evaluation duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"binned"},
	)

	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spamcv_runs_total",
			Help: "Cross-validation runs by outcome",
		},
		[]string{"status"},
	)
)

func Init() {
	prometheus.MustRegister(RecordsLoaded)
	prometheus.MustRegister(FoldsCompleted)
	prometheus.MustRegister(TrainDuration)
	prometheus.MustRegister(TestDuration)
	prometheus.MustRegister(RunsTotal)
}

// Serve exposes /metrics for long-running experiments. Best effort: a
// listener failure is logged, never fatal.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Warn("Metrics listener stopped", zap.Error(err))
		}
	}()
}
