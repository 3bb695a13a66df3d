// Package common defines sentinel errors and small helpers shared across
// lesspass packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Input errors (terminal and piped input).
	ErrorEmptyInput  = errors.New("empty input")
	ErrorNotTerminal = errors.New("not a terminal")

	// Configuration errors.
	ErrorInvalidConfig = errors.New("invalid configuration")
)
