// Package report exports suspicious pairs as CSV, JSON, or SQLite files.
//
// The format follows the output file extension. Unknown extensions are
// rejected before anything is written, and text formats are replaced
// atomically under an advisory lock so readers never see partial output.
package report
