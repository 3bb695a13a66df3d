// Package logging defines the structured-logging interface used across
// lesspass. The only implementation wraps log/slog.
//
// Master passwords and generated passwords must never reach a logger. Wrap
// any value that could contain one in Redacted.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "password generated", "site", site, "length", length)
type Logger interface {
	// Debug logs detail useful while diagnosing a problem.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
