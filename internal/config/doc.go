// Package config holds the command line and file configuration of scm.
//
// Settings come from, in increasing priority: configuration files found by
// CandidatePaths (YAML or TOML, loaded through kong), environment variables
// (optionally seeded from .env files by LoadEnvFiles) and command line flags.
package config
