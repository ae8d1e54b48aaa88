// Package features turns a batch of normalized documents into a TF-IDF matrix.
//
// Tokens are the whitespace-separated words of a normalized string that are at
// least two runes long. Numeric-only tokens count. The vocabulary is derived
// solely from the batch, ordered lexicographically, and never cached between
// calls.
//
// Weights follow the smoothed formulation
//
//	idf(t) = ln((1 + N) / (1 + df(t))) + 1
//	w(t, d) = tf(t, d) * idf(t)
//
// after which every row is L2-normalized so that a dot product between two rows
// is their cosine similarity. Rows are stored sparsely.
package features
