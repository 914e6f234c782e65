package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusStats(t *testing.T) {
	records := []Record{
		{ID: "1", Content: "Check out my channel. Subscribe now!", Label: 1},
		{ID: "2", Content: "This song never gets old.", Label: 0},
		{ID: "3", Content: "free gift cards here", Label: 1},
	}

	stats, err := CorpusStats(records)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, 2, stats[1].Records)
	assert.Equal(t, 1, stats[0].Records)
	assert.Greater(t, stats[1].Tokens, stats[0].Tokens)
	assert.GreaterOrEqual(t, stats[1].Sentences, 2)
	assert.Equal(t, 1, stats[0].Sentences)
}
