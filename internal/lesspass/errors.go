package lesspass

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProfile matches every *InvalidProfileError.
	ErrInvalidProfile = errors.New("invalid password profile")

	// ErrDerivation matches every *DerivationError.
	ErrDerivation = errors.New("password derivation failed")

	ErrEmptyMasterPassword = errors.New("master password is empty")
)

// Field names a profile field that failed validation.
type Field string

const (
	FieldSite    Field = "site"
	FieldOptions Field = "options"
	FieldLength  Field = "length"
	FieldCounter Field = "counter"
)

// InvalidProfileError reports which profile check failed. Value carries the
// rejected number for length and counter failures.
type InvalidProfileError struct {
	Field Field
	Value int
}

func (e *InvalidProfileError) Error() string {
	switch e.Field {
	case FieldSite:
		return "invalid password profile: site is required"
	case FieldOptions:
		return "invalid password profile: at least one character class must be enabled"
	case FieldLength:
		return fmt.Sprintf("invalid password profile: length %d is outside [%d, %d]", e.Value, MinLength, MaxLength)
	case FieldCounter:
		return fmt.Sprintf("invalid password profile: counter %d must be positive", e.Value)
	}
	return "invalid password profile: " + string(e.Field)
}

func (e *InvalidProfileError) Is(target error) bool {
	return target == ErrInvalidProfile
}

// DerivationError is returned when a password cannot be computed for a valid
// profile. No weaker fallback is ever produced.
type DerivationError struct {
	Err error
}

func (e *DerivationError) Error() string {
	return "password derivation failed: " + e.Err.Error()
}

func (e *DerivationError) Unwrap() error { return e.Err }

func (e *DerivationError) Is(target error) bool {
	return target == ErrDerivation
}
