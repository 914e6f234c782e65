package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/wejradford/spamcv/internal/storage/models"
	"github.com/wejradford/spamcv/pkg/logger"
)

// Client stores run history so experiment results stay comparable across
// dataset revisions and configurations. Trained models are never persisted.
type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	_, err = db.Exec("PRAGMA journal_mode = WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		dataset_hash TEXT NOT NULL,
		records INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		folds INTEGER NOT NULL,
		binned INTEGER NOT NULL,
		precision_mean REAL NOT NULL,
		precision_spread REAL NOT NULL,
		recall_mean REAL NOT NULL,
		recall_spread REAL NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_dataset ON runs(dataset_hash);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

	CREATE TABLE IF NOT EXISTS fold_metrics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		fold_index INTEGER NOT NULL,
		train_examples INTEGER NOT NULL,
		test_examples INTEGER NOT NULL,
		precision REAL NOT NULL,
		recall REAL NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_fold_metrics_run ON fold_metrics(run_id);
	`

	_, err := c.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

func (c *Client) InsertRun(run *models.Run) error {
	_, err := c.db.Exec(`
		INSERT INTO runs (id, dataset_hash, records, seed, folds, binned,
			precision_mean, precision_spread, recall_mean, recall_spread, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.DatasetHash, run.Records, run.Seed, run.Folds, boolToInt(run.Binned),
		run.PrecisionMean, run.PrecisionSpread, run.RecallMean, run.RecallSpread,
		run.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

func (c *Client) InsertFoldMetric(m *models.FoldMetric) error {
	_, err := c.db.Exec(`
		INSERT INTO fold_metrics (run_id, fold_index, train_examples, test_examples, precision, recall)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.RunID, m.FoldIndex, m.TrainExamples, m.TestExamples, m.Precision, m.Recall,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fold metric: %w", err)
	}
	return nil
}

// GetRunsByDataset lists stored runs for one dataset fingerprint, newest
// first.
func (c *Client) GetRunsByDataset(datasetHash string) ([]*models.Run, error) {
	rows, err := c.db.Query(`
		SELECT id, dataset_hash, records, seed, folds, binned,
			precision_mean, precision_spread, recall_mean, recall_spread, created_at
		FROM runs WHERE dataset_hash = ? ORDER BY created_at DESC`,
		datasetHash,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		var run models.Run
		var binned int
		var createdAt int64
		err := rows.Scan(&run.ID, &run.DatasetHash, &run.Records, &run.Seed, &run.Folds,
			&binned, &run.PrecisionMean, &run.PrecisionSpread, &run.RecallMean,
			&run.RecallSpread, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Binned = binned != 0
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
