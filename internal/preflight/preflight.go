package preflight

import (
	"plagscan/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks that apply to one analyze invocation.
// Output is only checked when a report path is given; the log directory only
// when one is configured.
func RunAll(cfg *config.Config, inputPath, outputPath string) []Result {
	results := []Result{CheckInput(inputPath)}
	if outputPath != "" {
		results = append(results, CheckOutput(outputPath))
	}
	if cfg != nil && cfg.Logging.Dir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Logging.Dir))
	}
	return results
}

// FirstFailure returns the first failed result, if any.
func FirstFailure(results []Result) (Result, bool) {
	for _, r := range results {
		if !r.Passed {
			return r, true
		}
	}
	return Result{}, false
}
