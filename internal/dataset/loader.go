package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wejradford/spamcv/pkg/logger"
)

// Column aliases accepted in the CSV header, keyed by canonical field.
// The YouTube spam corpus ships COMMENT_ID/AUTHOR/DATE/CONTENT/CLASS.
var columnAliases = map[string][]string{
	"id":        {"id", "comment_id"},
	"author":    {"author"},
	"timestamp": {"timestamp", "date"},
	"content":   {"content"},
	"label":     {"label", "class"},
}

type Loader struct {
	seed      int64
	cleanHTML bool
}

func NewLoader(seed int64, cleanHTML bool) *Loader {
	return &Loader{seed: seed, cleanHTML: cleanHTML}
}

// Load reads every CSV matched by the glob patterns, concatenates the rows
// in path order, then applies one seeded global shuffle. The shuffle order
// is fully determined by the seed and the input files.
func (l *Loader) Load(patterns []string) ([]Record, []string, error) {
	paths, err := expand(patterns)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("%w: no files match %v", ErrDataFormat, patterns)
	}

	var records []Record
	for _, path := range paths {
		rows, err := l.loadFile(path)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rows...)
	}

	rng := rand.New(rand.NewSource(l.seed))
	rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	logger.Info("Dataset loaded",
		zap.Int("records", len(records)),
		zap.Int("files", len(paths)),
		zap.Int64("seed", l.seed),
	)

	return records, paths, nil
}

func (l *Loader) loadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no header row", ErrDataFormat, path)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataFormat, path, err)
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrDataFormat, path, line, err)
		}

		label, err := strconv.Atoi(strings.TrimSpace(row[cols["label"]]))
		if err != nil || (label != 0 && label != 1) {
			return nil, fmt.Errorf("%w: %s line %d: label %q is not 0 or 1",
				ErrDataFormat, path, line, row[cols["label"]])
		}

		content := row[cols["content"]]
		if l.cleanHTML {
			content = CleanHTML(content)
		}

		records = append(records, Record{
			ID:        row[cols["id"]],
			Author:    row[cols["author"]],
			Timestamp: row[cols["timestamp"]],
			Content:   content,
			Label:     label,
		})
	}

	return records, nil
}

// mapColumns resolves the header to canonical field positions. Every
// canonical field must be present under exactly one of its aliases.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(columnAliases))
	for field, aliases := range columnAliases {
		found := -1
		for i, name := range header {
			name = strings.ToLower(strings.TrimSpace(name))
			for _, alias := range aliases {
				if name == alias {
					found = i
				}
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("missing column %s (accepted: %s)",
				field, strings.Join(aliases, ", "))
		}
		cols[field] = found
	}
	return cols, nil
}

func expand(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}
