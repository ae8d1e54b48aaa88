package features

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyVocabulary reports that no document in the batch produced a token.
var ErrEmptyVocabulary = errors.New("features: batch produced an empty vocabulary")

// Vocabulary maps batch terms to matrix columns in lexicographic order.
type Vocabulary struct {
	terms []string
	index map[string]int
	idf   []float64
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Terms returns a copy of the terms in column order.
func (v *Vocabulary) Terms() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Index returns the column assigned to term.
func (v *Vocabulary) Index(term string) (int, bool) {
	if v == nil {
		return 0, false
	}
	idx, ok := v.index[term]
	return idx, ok
}

// IDF returns the smoothed inverse document frequency of term, or 0 when the
// term is not part of the vocabulary.
func (v *Vocabulary) IDF(term string) float64 {
	idx, ok := v.Index(term)
	if !ok {
		return 0
	}
	return v.idf[idx]
}

// Row is one sparse document vector. Indices are strictly increasing and
// Values[k] is the weight of column Indices[k].
type Row struct {
	Indices []int
	Values  []float64
}

// Empty reports whether the row has no non-zero weights.
func (r Row) Empty() bool {
	return len(r.Indices) == 0
}

// Matrix is a sparse document-term matrix with L2-normalized rows.
type Matrix struct {
	rows []Row
	cols int
}

// Rows returns the number of documents.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}
	return len(m.rows)
}

// Cols returns the vocabulary size.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// Row returns the sparse vector of document i. The returned slices must not
// be modified.
func (m *Matrix) Row(i int) Row {
	return m.rows[i]
}

// At returns the weight of column j in row i.
func (m *Matrix) At(i, j int) float64 {
	row := m.rows[i]
	k := sort.SearchInts(row.Indices, j)
	if k < len(row.Indices) && row.Indices[k] == j {
		return row.Values[k]
	}
	return 0
}

// documentFrequencies collects per-term document counts for IDF weighting.
type documentFrequencies struct {
	docCount int
	docFreq  map[string]int
}

func newDocumentFrequencies() *documentFrequencies {
	return &documentFrequencies{docFreq: make(map[string]int)}
}

// add registers the unique tokens of one document.
func (c *documentFrequencies) add(tokens []string) {
	c.docCount++
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		c.docFreq[token]++
	}
}

// idf computes ln((1+N)/(1+df)) + 1, which stays positive for every term.
func (c *documentFrequencies) idf(term string) float64 {
	n := float64(c.docCount)
	return math.Log((1+n)/(1+float64(c.docFreq[term]))) + 1
}

// Build tokenizes every normalized document and returns the batch vocabulary
// together with the TF-IDF matrix, one row per document in input order.
// Documents without tokens keep an all-zero row. ErrEmptyVocabulary is
// returned when the whole batch is token-free.
func Build(corpus []string) (*Vocabulary, *Matrix, error) {
	stats := newDocumentFrequencies()
	tokenized := make([][]string, len(corpus))
	for i, doc := range corpus {
		tokens := Tokenize(doc)
		tokenized[i] = tokens
		stats.add(tokens)
	}
	if len(stats.docFreq) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	vocab := newVocabulary(stats)
	rows := make([]Row, len(tokenized))
	for i, tokens := range tokenized {
		rows[i] = vectorize(tokens, vocab)
	}
	return vocab, &Matrix{rows: rows, cols: vocab.Len()}, nil
}

func newVocabulary(stats *documentFrequencies) *Vocabulary {
	terms := make([]string, 0, len(stats.docFreq))
	for term := range stats.docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		index[term] = i
		idf[i] = stats.idf(term)
	}
	return &Vocabulary{terms: terms, index: index, idf: idf}
}

// vectorize weights raw term counts by IDF and scales the row to unit length.
func vectorize(tokens []string, vocab *Vocabulary) Row {
	if len(tokens) == 0 {
		return Row{}
	}
	counts := make(map[int]float64, len(tokens))
	for _, token := range tokens {
		counts[vocab.index[token]]++
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var norm float64
	for k, idx := range indices {
		w := counts[idx] * vocab.idf[idx]
		values[k] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return Row{}
	}
	for k := range values {
		values[k] /= norm
	}
	return Row{Indices: indices, Values: values}
}
