// Package preflight checks filesystem readiness before an analysis run.
//
// The analyze command calls RunAll with the input path, the optional report
// path, and the loaded config. The first failing Result aborts the run so a
// long analysis is never started against an unreadable corpus or an output
// location that cannot be written.
package preflight
