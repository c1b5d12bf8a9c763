package floor

import "sort"

func sortBySeq[T any](list []T, seqOf func(T) uint64) {
	sort.SliceStable(list, func(i, j int) bool {
		return seqOf(list[i]) < seqOf(list[j])
	})
}
