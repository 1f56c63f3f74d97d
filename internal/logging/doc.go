// Package logging constructs the application's slog loggers and provides the
// shared attribute helpers used across components.
package logging
