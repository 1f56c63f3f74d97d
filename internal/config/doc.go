// Package config loads, normalizes, and validates reelsync configuration.
//
// Configuration comes from a TOML file found at an explicit path, a
// project-local reelsync.toml, or ~/.config/reelsync/config.toml, in that
// order. Credentials missing from the file fall back to environment
// variables. Load returns a config with every path expanded and every value
// validated, so the rest of the program never re-checks configuration.
package config
