package config

const (
	defaultConfigPath   = "~/.config/plagscan/config.toml"
	projectConfigName   = "plagscan.toml"
	defaultThreshold    = 0.8
	defaultMinDocLength = 50
	defaultSummaryLimit = 10
	defaultPrecision    = 3
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Detection: Detection{
			Threshold:    defaultThreshold,
			MinDocLength: defaultMinDocLength,
		},
		Report: Report{
			SummaryLimit: defaultSummaryLimit,
			Precision:    defaultPrecision,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
