// Package helper provides test doubles shared by the engine, shell and feature tests:
// a slog handler spy, a metrics collector spy and a manually advanced clock.
package helper
