// Package detection runs the plagiarism analysis pipeline.
//
// Analyze filters short documents, normalizes the survivors, builds a TF-IDF
// matrix scoped to the batch, computes pairwise cosine similarity, and keeps
// the pairs at or above the threshold. Every call is independent: no
// vocabulary, statistics, or configuration survive between runs.
package detection
