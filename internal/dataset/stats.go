package dataset

import (
	"fmt"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/wejradford/spamcv/pkg/logger"
)

// ClassStats summarizes the text of one label class.
type ClassStats struct {
	Records   int
	Tokens    int
	Sentences int
}

// CorpusStats tokenizes every record with prose and aggregates counts per
// label class. It is a diagnostic pass only; the feature formatter does its
// own, much simpler, whitespace tokenization.
func CorpusStats(records []Record) (map[int]ClassStats, error) {
	stats := make(map[int]ClassStats)
	for _, rec := range records {
		doc, err := prose.NewDocument(rec.Content,
			prose.WithExtraction(false),
			prose.WithTagging(false),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to tokenize record %s: %w", rec.ID, err)
		}
		s := stats[rec.Label]
		s.Records++
		s.Tokens += len(doc.Tokens())
		s.Sentences += len(doc.Sentences())
		stats[rec.Label] = s
	}

	for label, s := range stats {
		logger.Info("Corpus class statistics",
			zap.Int("label", label),
			zap.Int("records", s.Records),
			zap.Int("tokens", s.Tokens),
			zap.Int("sentences", s.Sentences),
		)
	}

	return stats, nil
}
