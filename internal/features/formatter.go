// Package features renders records into the label-prefixed text format the
// external classifier trains on.
package features

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/wejradford/spamcv/internal/dataset"
)

// ErrTimestampParse reports a non-empty timestamp that does not match the
// expected YYYY-MM-DDTHH:MM:SS layout.
var ErrTimestampParse = errors.New("unparseable timestamp")

const timestampLayout = "2006-01-02T15:04:05"

// FormatRecord renders one record as a single training line:
//
//	__label__<label> <tokens> _ _ <binned>\n
//
// The two literal underscores are positional separators so the binned region
// is distinguishable from body text by the downstream tokenizer; they are
// emitted even when the binned region is empty, leaving a trailing space.
func FormatRecord(rec dataset.Record, includeBinned bool) (string, error) {
	binned := ""
	if includeBinned && rec.Timestamp != "" {
		var err error
		binned, err = binTimestamp(rec.Timestamp)
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("__label__%d %s _ _ %s\n", rec.Label, Normalize(rec.Content), binned), nil
}

// Normalize lower-cases text and collapses whitespace runs to single spaces.
// Idempotent on already-normalized input.
func Normalize(content string) string {
	return strings.Join(strings.Fields(strings.ToLower(content)), " ")
}

// binTimestamp discretizes a timestamp into month/day/hour tokens, e.g.
// "2013-10-27T19:00:17.015000" -> "m10 d27 h19". Fractional seconds are
// discarded before parsing.
func binTimestamp(ts string) (string, error) {
	trimmed := ts
	if i := strings.IndexByte(ts, '.'); i >= 0 {
		trimmed = ts[:i]
	}
	t, err := time.Parse(timestampLayout, trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTimestampParse, ts)
	}
	return fmt.Sprintf("m%d d%d h%d", int(t.Month()), t.Day(), t.Hour()), nil
}

// WriteSubset formats every record into path, truncating any previous
// contents. The file is flushed and closed on all exit paths before the
// classifier ever sees it. Returns the path and per-label occurrence counts.
func WriteSubset(records []dataset.Record, path string, includeBinned bool) (string, map[int]int, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	labels := make(map[int]int)

	for _, rec := range records {
		line, err := FormatRecord(rec, includeBinned)
		if err != nil {
			return "", nil, err
		}
		if _, err := w.WriteString(line); err != nil {
			return "", nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		labels[rec.Label]++
	}

	if err := w.Flush(); err != nil {
		return "", nil, fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, labels, nil
}
