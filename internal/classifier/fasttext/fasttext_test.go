package fasttext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wejradford/spamcv/internal/classifier"
)

func TestParseTestOutput(t *testing.T) {
	out := "N\t245\nP@1\t0.959\nR@1\t0.959\n"

	score, err := ParseTestOutput(out)
	require.NoError(t, err)
	assert.Equal(t, 245, score.Examples)
	assert.InDelta(t, 0.959, score.PrecisionAt1, 1e-9)
	assert.InDelta(t, 0.959, score.RecallAt1, 1e-9)
}

func TestParseTestOutputWithProgressNoise(t *testing.T) {
	// fastText interleaves progress output before the report lines.
	out := "Read 0M words\nNumber of words: 4231\nN\t196\nP@1\t0.913\nR@1\t0.913\n"

	score, err := ParseTestOutput(out)
	require.NoError(t, err)
	assert.Equal(t, 196, score.Examples)
	assert.InDelta(t, 0.913, score.PrecisionAt1, 1e-9)
}

func TestParseTestOutputIncomplete(t *testing.T) {
	_, err := ParseTestOutput("N\t245\nP@1\t0.959\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, classifier.ErrClassifier)

	_, err = ParseTestOutput("")
	assert.ErrorIs(t, err, classifier.ErrClassifier)
}

func TestParseTestOutputBadValues(t *testing.T) {
	_, err := ParseTestOutput("N\tmany\nP@1\t0.9\nR@1\t0.9\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, classifier.ErrClassifier)

	_, err = ParseTestOutput("N\t10\nP@1\thigh\nR@1\t0.9\n")
	assert.ErrorIs(t, err, classifier.ErrClassifier)
}

func TestTrainMissingBinary(t *testing.T) {
	trainer := NewTrainer("/nonexistent/fasttext", 0)

	_, err := trainer.Train(context.Background(), "/tmp/train.txt", classifier.Hyperparams{Epochs: 1, LR: 0.5})
	require.Error(t, err)
	assert.ErrorIs(t, err, classifier.ErrClassifier)
}
