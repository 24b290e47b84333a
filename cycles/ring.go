package cycles

import (
	"slices"
	"strconv"
	"strings"
)

// Ring is an open, canonical vertex sequence of one simple cycle.
type Ring []int

// Len returns the ring size.
func (r Ring) Len() int { return len(r) }

// Closed returns the ring as a closed path [v0, v1, …, vk, v0].
func (r Ring) Closed() []int {
	out := make([]int, 0, len(r)+1)
	out = append(out, r...)
	if len(r) > 0 {
		out = append(out, r[0])
	}
	return out
}

// Edges returns the ring bonds as vertex pairs in path order, closing edge last.
func (r Ring) Edges() [][2]int {
	out := make([][2]int, len(r))
	for i := range r {
		out[i] = [2]int{r[i], r[(i+1)%len(r)]}
	}
	return out
}

// Key returns a signature of the cycle. Any rotation or reflection of the
// same cycle yields the same key; two different cycles over the same vertex
// set (possible in cage structures) yield different keys.
func (r Ring) Key() string {
	c := Canonical(r)
	var sb strings.Builder
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Canonical rotates and orients a cycle so that the smallest vertex comes
// first and the smaller of its two ring neighbours second.
//
// Steps:
//  1. Locate the minimal vertex (vertices of a simple cycle are distinct, so
//     the minimal rotation is the rotation starting at it).
//  2. Rotate to start there.
//  3. Reverse the tail when the last vertex is smaller than the second.
//
// Complexity: O(L).
func Canonical(cycle []int) Ring {
	n := len(cycle)
	if n == 0 {
		return Ring{}
	}
	k := 0
	for i := 1; i < n; i++ {
		if cycle[i] < cycle[k] {
			k = i
		}
	}
	out := make(Ring, n)
	for i := 0; i < n; i++ {
		out[i] = cycle[(k+i)%n]
	}
	if n > 2 && out[n-1] < out[1] {
		slices.Reverse(out[1:])
	}

	return out
}

// sortRings orders rings by size, then lexicographically.
func sortRings(rings []Ring) {
	slices.SortFunc(rings, func(a, b Ring) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return slices.Compare(a, b)
	})
}

// dedupe drops rings whose vertex set has been seen before, keeping the
// first occurrence.
func dedupe(rings []Ring) []Ring {
	seen := make(map[string]struct{}, len(rings))
	out := rings[:0]
	for _, r := range rings {
		k := r.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
