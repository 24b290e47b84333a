// SPDX-License-Identifier: MIT
//
// File: sum.go
// Role: Hückel validity predicate and cycle electron summation.

package aromaticity

// ValidSum reports whether s pi electrons satisfy Hückel's 4n+2 rule.
// Zero and negative sums are never valid.
func ValidSum(s int) bool {
	return s > 0 && s%4 == 2
}

// ElectronSum totals the contributions along a closed cycle path
// (cycle[0] == cycle[len-1]); each vertex is counted once, the repeated
// start being skipped.
//
// subset maps cycle vertices to indices of contributions; nil means the
// identity. Vertices that do not resolve to a contribution add nothing, so
// the function is total over any input.
//
// Complexity: O(len(cycle)).
func ElectronSum(cycle []int, contributions []int, subset []int) int {
	sum := 0
	for i := 1; i < len(cycle); i++ {
		idx := cycle[i]
		if subset != nil {
			if idx < 0 || idx >= len(subset) {
				continue
			}
			idx = subset[idx]
		}
		if idx < 0 || idx >= len(contributions) {
			continue
		}
		sum += contributions[idx]
	}
	return sum
}
