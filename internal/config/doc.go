// Package config handles loading, parsing, and validation of application
// configuration from environment variables and optional YAML files.
package config
