package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDetection(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDetection() error {
	t := c.Detection.Threshold
	if math.IsNaN(t) || t < 0 || t > 1 {
		return errors.New("detection.threshold must be between 0 and 1")
	}
	if c.Detection.MinDocLength < 0 {
		return errors.New("detection.min_doc_length must be >= 0")
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.SummaryLimit <= 0 {
		return errors.New("report.summary_limit must be positive")
	}
	if c.Report.Precision <= 0 || c.Report.Precision > 15 {
		return errors.New("report.precision must be between 1 and 15")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn or error)", c.Logging.Level)
	}
}
