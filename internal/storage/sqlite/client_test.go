package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wejradford/spamcv/internal/storage/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.InitSchema())
	return client
}

func TestInsertAndQueryRuns(t *testing.T) {
	client := newTestClient(t)

	run := &models.Run{
		ID:              "run-1",
		DatasetHash:     "abc123",
		Records:         1956,
		Seed:            666,
		Folds:           10,
		Binned:          true,
		PrecisionMean:   0.95,
		PrecisionSpread: 0.03,
		RecallMean:      0.95,
		RecallSpread:    0.03,
		CreatedAt:       time.Unix(1700000000, 0),
	}
	require.NoError(t, client.InsertRun(run))

	for i := 0; i < 10; i++ {
		require.NoError(t, client.InsertFoldMetric(&models.FoldMetric{
			RunID:         "run-1",
			FoldIndex:     i,
			TrainExamples: 1760,
			TestExamples:  196,
			Precision:     0.95,
			Recall:        0.95,
		}))
	}

	runs, err := client.GetRunsByDataset("abc123")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.True(t, runs[0].Binned)
	assert.InDelta(t, 0.95, runs[0].PrecisionMean, 1e-9)
	assert.Equal(t, run.CreatedAt.Unix(), runs[0].CreatedAt.Unix())

	runs, err = client.GetRunsByDataset("other")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestGetRunsNewestFirst(t *testing.T) {
	client := newTestClient(t)

	for i, id := range []string{"old", "new"} {
		require.NoError(t, client.InsertRun(&models.Run{
			ID:          id,
			DatasetHash: "h",
			CreatedAt:   time.Unix(int64(1700000000+i*3600), 0),
		}))
	}

	runs, err := client.GetRunsByDataset("h")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "old", runs[1].ID)
}
