package crossval

// Partition splits record indices 0..total-1 into k test sets with standard
// k-fold semantics: every index lands in exactly one test set and sizes
// differ by at most one.
func Partition(total, k int) [][]int {
	folds := make([][]int, k)
	for i := 0; i < k; i++ {
		lo := i * total / k
		hi := (i + 1) * total / k
		fold := make([]int, 0, hi-lo)
		for idx := lo; idx < hi; idx++ {
			fold = append(fold, idx)
		}
		folds[i] = fold
	}
	return folds
}

// trainIndices is the complement of one test set: everything outside
// [lo, hi) in index order.
func trainIndices(total int, test []int) []int {
	inTest := make(map[int]bool, len(test))
	for _, idx := range test {
		inTest[idx] = true
	}
	train := make([]int, 0, total-len(test))
	for idx := 0; idx < total; idx++ {
		if !inTest[idx] {
			train = append(train, idx)
		}
	}
	return train
}
