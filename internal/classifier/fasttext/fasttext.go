// Package fasttext binds the classifier capability interface to the fastText
// command-line tool, invoked as a subprocess per fold.
package fasttext

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wejradford/spamcv/internal/classifier"
	"github.com/wejradford/spamcv/pkg/logger"
)

type Trainer struct {
	binary  string
	timeout time.Duration
}

func NewTrainer(binary string, timeout time.Duration) *Trainer {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Trainer{binary: binary, timeout: timeout}
}

// Train runs `fasttext supervised` over inputPath. The model is written next
// to the training file, so a scoped temp directory per fold keeps artifacts
// isolated.
func (t *Trainer) Train(ctx context.Context, inputPath string, params classifier.Hyperparams) (classifier.Model, error) {
	modelPrefix := strings.TrimSuffix(inputPath, ".txt") + "_model"

	args := []string{
		"supervised",
		"-input", inputPath,
		"-output", modelPrefix,
		"-epoch", strconv.Itoa(params.Epochs),
		"-lr", strconv.FormatFloat(params.LR, 'g', -1, 64),
		"-wordNgrams", strconv.Itoa(params.WordNgrams),
		"-minCount", strconv.Itoa(params.MinCount),
		"-verbose", strconv.Itoa(params.Verbose),
	}

	out, err := t.run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%w: training on %s: %v", classifier.ErrClassifier, inputPath, err)
	}

	logger.Debug("Trainer finished",
		zap.String("input", inputPath),
		zap.String("model", modelPrefix+".bin"),
		zap.String("output", strings.TrimSpace(out)),
	)

	return &model{trainer: t, path: modelPrefix + ".bin"}, nil
}

func (t *Trainer) run(ctx context.Context, args []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, t.binary, args...)
	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return string(out), ctx.Err()
	}
	if err != nil {
		return string(out), fmt.Errorf("%s %s: %v: %s",
			t.binary, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

type model struct {
	trainer *Trainer
	path    string
}

// Test runs `fasttext test <model> <input> 1` and parses the N/P@1/R@1
// report lines.
func (m *model) Test(ctx context.Context, inputPath string) (classifier.Score, error) {
	out, err := m.trainer.run(ctx, []string{"test", m.path, inputPath, "1"})
	if err != nil {
		return classifier.Score{}, fmt.Errorf("%w: testing %s: %v", classifier.ErrClassifier, inputPath, err)
	}
	return ParseTestOutput(out)
}

// ParseTestOutput extracts the score from fastText's test report, which
// looks like:
//
//	N	245
//	P@1	0.959
//	R@1	0.959
func ParseTestOutput(out string) (classifier.Score, error) {
	var score classifier.Score
	var haveN, haveP, haveR bool

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		switch fields[0] {
		case "N":
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return classifier.Score{}, fmt.Errorf("%w: bad example count %q", classifier.ErrClassifier, fields[1])
			}
			score.Examples = n
			haveN = true
		case "P@1":
			p, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return classifier.Score{}, fmt.Errorf("%w: bad precision %q", classifier.ErrClassifier, fields[1])
			}
			score.PrecisionAt1 = p
			haveP = true
		case "R@1":
			r, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return classifier.Score{}, fmt.Errorf("%w: bad recall %q", classifier.ErrClassifier, fields[1])
			}
			score.RecallAt1 = r
			haveR = true
		}
	}

	if !haveN || !haveP || !haveR {
		return classifier.Score{}, fmt.Errorf("%w: incomplete test output: %q",
			classifier.ErrClassifier, strings.TrimSpace(out))
	}

	return score, nil
}
