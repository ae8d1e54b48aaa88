// Package ingest turns input paths into documents for analysis.
//
// A directory yields one document per top-level .txt file, identified by file
// name and ordered by name. A .csv file yields one document per row using its
// id and text columns. Reads go through an afero filesystem so callers and
// tests can substitute an in-memory tree.
package ingest
