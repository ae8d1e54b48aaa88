// Package similarity computes pairwise cosine similarity over a TF-IDF matrix.
package similarity

import (
	"plagscan/internal/features"
)

// identityTolerance bounds how far below 1 a dot product may fall before two
// rows are compared element-wise for exact equality.
const identityTolerance = 1e-9

// Matrix is a dense, symmetric document-by-document similarity matrix.
type Matrix struct {
	n      int
	values []float64
}

// Size returns the number of documents on each axis.
func (s *Matrix) Size() int {
	if s == nil {
		return 0
	}
	return s.n
}

// At returns the similarity between documents i and j.
func (s *Matrix) At(i, j int) float64 {
	return s.values[i*s.n+j]
}

// Row returns a copy of the similarities of document i against every document.
func (s *Matrix) Row(i int) []float64 {
	out := make([]float64, s.n)
	copy(out, s.values[i*s.n:(i+1)*s.n])
	return out
}

// Cosine computes the similarity of every pair of rows. Rows are expected to
// be L2-normalized, so the dot product is the cosine. The diagonal is 1 for
// rows with weights and 0 for empty rows; every value is clamped to [0, 1].
func Cosine(m *features.Matrix) *Matrix {
	n := m.Rows()
	sim := &Matrix{n: n, values: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		rowI := m.Row(i)
		if rowI.Empty() {
			continue
		}
		sim.values[i*n+i] = 1
		for j := i + 1; j < n; j++ {
			rowJ := m.Row(j)
			if rowJ.Empty() {
				continue
			}
			score := dot(rowI, rowJ)
			if score >= 1-identityTolerance && equalRows(rowI, rowJ) {
				score = 1
			}
			score = clamp(score)
			sim.values[i*n+j] = score
			sim.values[j*n+i] = score
		}
	}
	return sim
}

// dot merges two sparse rows by column index.
func dot(a, b features.Row) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

func equalRows(a, b features.Row) bool {
	if len(a.Indices) != len(b.Indices) {
		return false
	}
	for k := range a.Indices {
		if a.Indices[k] != b.Indices[k] || a.Values[k] != b.Values[k] {
			return false
		}
	}
	return true
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
