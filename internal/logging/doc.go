// Package logging assembles structured slog loggers and formatting helpers used
// across plagscan.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so pipeline code can tag log lines with
// the run identifier and stage. A no-op logger is provided for tests and for
// library callers that do not want output.
package logging
