package copt

import "sort"

// Inf returns the solver's positive infinity, suitable for unbounded bounds.
func Inf() float64 {
	return Infinity
}

// NegInf returns the solver's negative infinity, suitable for unbounded bounds.
func NegInf() float64 {
	return -Infinity
}

// clampInf maps values beyond the solver's infinity, including IEEE
// infinities, to ±Infinity.
func clampInf(v float64) float64 {
	switch {
	case v >= Infinity:
		return Infinity
	case v <= -Infinity:
		return -Infinity
	}
	return v
}

// nonzerosToCSR converts a slice of Nonzero elements to compressed sparse row
// format with numRow rows. start has numRow+1 entries; row i owns
// index[start[i]:start[i+1]].
func nonzerosToCSR(nz []Nonzero, numRow int) (start, index []int, value []float64, err error) {
	// Sort by row, then by column
	sorted := make([]Nonzero, len(nz))
	copy(sorted, nz)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	// Validate and deduplicate
	filtered := make([]Nonzero, 0, len(sorted))
	for _, n := range sorted {
		if n.Row < 0 || n.Col < 0 {
			return nil, nil, nil, newErrorMsg("nonzerosToCSR", "negative row or column index")
		}
		if n.Row >= numRow {
			return nil, nil, nil, newErrorMsg("nonzerosToCSR", "row index out of range")
		}
		// Merge duplicates (keep last value)
		if len(filtered) > 0 && filtered[len(filtered)-1].Row == n.Row && filtered[len(filtered)-1].Col == n.Col {
			filtered[len(filtered)-1].Val = n.Val
		} else {
			filtered = append(filtered, n)
		}
	}

	// Build CSR format
	start = make([]int, numRow+1)
	index = make([]int, len(filtered))
	value = make([]float64, len(filtered))
	for i, n := range filtered {
		start[n.Row+1]++
		index[i] = n.Col
		value[i] = n.Val
	}
	for r := 0; r < numRow; r++ {
		start[r+1] += start[r]
	}

	return start, index, value, nil
}

// expandSlice expands a slice to length n if it's empty, filling with fillValue.
// Returns the original slice if it already has length n.
// Returns an error if the slice has a non-zero length that differs from n.
func expandSlice[T any](n int, slice []T, fillValue T) ([]T, error) {
	if len(slice) == n {
		return slice, nil
	}
	if len(slice) == 0 {
		result := make([]T, n)
		for i := range result {
			result[i] = fillValue
		}
		return result, nil
	}
	return nil, wrapError("expandSlice", 0, ErrDimensionMismatch)
}

// maxRowCol finds the maximum row and column indices from a slice of nonzeros.
func maxRowCol(nz []Nonzero) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for _, n := range nz {
		if n.Row > maxRow {
			maxRow = n.Row
		}
		if n.Col > maxCol {
			maxCol = n.Col
		}
	}
	return maxRow, maxCol
}
