// Package config loads the application configuration from config.yml,
// applies environment overrides for credentials and validates the result.
package config
