package detection

import "fmt"

// InvalidThresholdError reports a threshold outside [0, 1].
type InvalidThresholdError struct {
	Value float64
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("invalid threshold %v: must be between 0 and 1", e.Value)
}

// Validate reports an *InvalidThresholdError when the threshold is outside [0, 1].
func (o Options) Validate() error {
	return validateThreshold(o.Threshold)
}

func validateThreshold(t float64) error {
	// NaN fails both comparisons.
	if !(t >= 0 && t <= 1) {
		return &InvalidThresholdError{Value: t}
	}
	return nil
}
