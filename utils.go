package dictionary

// Returns the number of buckets allocated for the given capacity:
// floor(1.3 * capacity), never less than one bucket.
func TableSizeFor(capacity int) int {
	size := max(capacity, 0) * 13 / 10

	return max(size, 1)
}

// Sorts items in place in ascending order of compare using a shell sort
// with the 3h+1 gap sequence.
func shellSort[T any](items []T, compare func(a, b T) int) {
	n := len(items)

	h := 1
	for h <= n/3 {
		h = h*3 + 1
	}

	for ; h > 0; h = (h - 1) / 3 {
		for out := h; out < n; out++ {
			tmp := items[out]

			in := out
			for in > h-1 && compare(items[in-h], tmp) >= 0 {
				items[in] = items[in-h]
				in -= h
			}

			items[in] = tmp
		}
	}
}
