package crossval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionInvariants(t *testing.T) {
	cases := []struct {
		total int
		k     int
	}{
		{total: 100, k: 10},
		{total: 103, k: 10},
		{total: 10, k: 10},
		{total: 7, k: 3},
		{total: 1956, k: 10},
	}

	for _, tc := range cases {
		folds := Partition(tc.total, tc.k)
		require.Len(t, folds, tc.k)

		seen := make(map[int]int)
		minSize, maxSize := tc.total, 0
		for _, fold := range folds {
			if len(fold) < minSize {
				minSize = len(fold)
			}
			if len(fold) > maxSize {
				maxSize = len(fold)
			}
			for _, idx := range fold {
				seen[idx]++
			}
		}

		// Every index appears in exactly one test set.
		assert.Len(t, seen, tc.total)
		for idx, count := range seen {
			assert.Equal(t, 1, count, "index %d appears %d times", idx, count)
		}

		// Fold sizes differ by at most one.
		assert.LessOrEqual(t, maxSize-minSize, 1,
			"total=%d k=%d sizes range %d..%d", tc.total, tc.k, minSize, maxSize)
	}
}

func TestTrainIndicesComplement(t *testing.T) {
	total := 25
	folds := Partition(total, 4)

	for _, test := range folds {
		train := trainIndices(total, test)
		assert.Equal(t, total, len(train)+len(test))

		inTest := make(map[int]bool)
		for _, idx := range test {
			inTest[idx] = true
		}
		for _, idx := range train {
			assert.False(t, inTest[idx], "index %d in both train and test", idx)
		}
	}
}
