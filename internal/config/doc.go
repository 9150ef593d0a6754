// Package config loads, normalizes, and validates moqdump configuration.
//
// Settings come from a TOML file layered over repository defaults. Command
// line flags are applied by the caller after Load and before Validate.
package config
