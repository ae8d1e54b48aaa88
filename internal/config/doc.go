// Package config loads, normalizes, and validates plagscan configuration data.
//
// It supplies repository defaults (threshold 0.8, minimum document length 50),
// expands user paths (including tilde shortcuts), reads TOML files, and honours
// environment overrides such as PLAGSCAN_THRESHOLD and PLAGSCAN_LOG_LEVEL.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors. Command
// line flags override the loaded values per invocation; nothing here is global.
package config
