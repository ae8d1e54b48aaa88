package detection

import "plagscan/internal/similarity"

// SelectPairs returns every (i, j) with i < j whose similarity is at least
// threshold, in ascending (i, j) order. ids[k] names row k of sim.
func SelectPairs(ids []string, sim *similarity.Matrix, threshold float64) []SuspiciousPair {
	n := sim.Size()
	if len(ids) < n {
		n = len(ids)
	}
	pairs := make([]SuspiciousPair, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			score := sim.At(i, j)
			if score >= threshold {
				pairs = append(pairs, SuspiciousPair{DocIDA: ids[i], DocIDB: ids[j], Similarity: score})
			}
		}
	}
	return pairs
}
