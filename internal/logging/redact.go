package logging

import "log/slog"

const redacted = "[REDACTED]"

// Redacted hides its contents from every handler. Converting a string to
// Redacted does not copy it.
type Redacted string

func (Redacted) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

func (Redacted) String() string { return redacted }
