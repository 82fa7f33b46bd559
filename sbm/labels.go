// SPDX-License-Identifier: MIT
// Package: dmprdpg/sbm
//
// labels.go — community labelling of the nodes of one slice.
//
// Community k occupies a contiguous run of groups[k] node indices; the same
// labelling repeats in every layer/timestep slice. Order is the declared
// order of groups, never the order of a hashed set.

package sbm

// Labels returns the community index of every node of a slice.
// Labels([]int{2,3}) == [0 0 1 1 1].
// Complexity: O(N).
func Labels(groups []int) []int {
	n := 0
	for _, g := range groups {
		n += g
	}
	out := make([]int, 0, n)
	for k, g := range groups {
		for i := 0; i < g; i++ {
			out = append(out, k)
		}
	}

	return out
}

// Ranges returns the half-open index run of every community, in declared order.
// Ranges([]int{2,3}) == [{0 2} {2 5}].
// Complexity: O(K).
func Ranges(groups []int) []Range {
	out := make([]Range, len(groups))
	start := 0
	for k, g := range groups {
		out[k] = Range{Start: start, End: start + g}
		start += g
	}

	return out
}

// GroupByLabel buckets row indices by label. Keys are the distinct labels,
// values list the rows carrying that label in ascending order.
func GroupByLabel(labels []int) map[int][]int {
	out := make(map[int][]int)
	for i, l := range labels {
		out[l] = append(out[l], i)
	}

	return out
}
