// Package logging assembles the structured slog loggers used across
// photoaudit.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so audit code can automatically tag
// log lines with the run ID and the Flickr set being processed. A no-op
// logger is provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
