package detection

import (
	"plagscan/internal/config"
)

// Default pipeline settings.
const (
	DefaultThreshold    = 0.8
	DefaultMinDocLength = 50
)

// Document is one input text. IDs are expected to be unique within a batch.
type Document struct {
	ID   string
	Text string
}

// SuspiciousPair is a pair of documents whose similarity met the threshold.
// DocIDA always precedes DocIDB in corpus order.
type SuspiciousPair struct {
	DocIDA     string  `json:"doc_id_a"`
	DocIDB     string  `json:"doc_id_b"`
	Similarity float64 `json:"similarity"`
}

// Options controls a single analysis run.
type Options struct {
	// Threshold is the inclusive similarity cut-off in [0, 1].
	Threshold float64
	// MinDocLength is the minimum raw text length in characters.
	MinDocLength int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, MinDocLength: DefaultMinDocLength}
}

// OptionsFromConfig derives pipeline options from loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		Threshold:    cfg.Detection.Threshold,
		MinDocLength: cfg.Detection.MinDocLength,
	}
}

// Result summarizes one analysis run.
type Result struct {
	RunID     string           `json:"run_id"`
	Threshold float64          `json:"threshold"`
	Documents int              `json:"documents"`
	Analyzed  int              `json:"analyzed"`
	Skipped   int              `json:"skipped"`
	Pairs     []SuspiciousPair `json:"pairs"`
}
