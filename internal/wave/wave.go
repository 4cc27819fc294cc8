// Package wave implements the waveform permutation sum: a deterministic
// compression of a string into a non-negative integer, used both when
// deriving node identifiers and when fingerprinting signature values.
package wave

// Sum computes the permutation-weighted code point sum of s.
//
// Index visitation starts at 0 and zig-zags (+1, -1, +1, ...) until an
// index would repeat or fall out of bounds; every index not yet visited is
// then appended in ascending order. The result is the sum of each visited
// code point multiplied by its 1-based visitation rank. Sum("") == 0.
func Sum(s string) uint64 {
	runes := []rune(s)
	n := len(runes)
	if n == 0 {
		return 0
	}

	order := make([]int, 0, n)
	visited := make([]bool, n)
	i, step := 0, 1
	for i >= 0 && i < n {
		if visited[i] {
			break
		}
		visited[i] = true
		order = append(order, i)
		i += step
		step = -step
	}
	for idx := 0; idx < n; idx++ {
		if !visited[idx] {
			order = append(order, idx)
		}
	}

	var total uint64
	for rank, idx := range order {
		total += uint64(runes[idx]) * uint64(rank+1)
	}
	return total
}
