// Package config provides the settings for logging and key generation.
//
// Settings come from an optional YAML file, environment variables (optionally loaded from a .env file)
// and command-line flags, in increasing order of precedence. Every settings struct validates itself
// before any cryptographic work begins.
package config
