package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeDetection(); err != nil {
		return err
	}
	c.normalizeReport()
	return c.normalizeLogging()
}

func (c *Config) normalizeDetection() error {
	if value, ok := os.LookupEnv("PLAGSCAN_THRESHOLD"); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("PLAGSCAN_THRESHOLD: %w", err)
		}
		c.Detection.Threshold = parsed
	}
	return nil
}

func (c *Config) normalizeReport() {
	if c.Report.SummaryLimit <= 0 {
		c.Report.SummaryLimit = defaultSummaryLimit
	}
	if c.Report.Precision <= 0 {
		c.Report.Precision = defaultPrecision
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("PLAGSCAN_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
