// Package config loads the application configuration from a YAML file
// with environment variable overrides, and exposes the per-package
// configuration structs the rest of the system consumes.
package config
