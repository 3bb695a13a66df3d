package lesspass

// OptionsValid reports whether at least one character class is enabled.
func OptionsValid(p Profile) bool {
	return p.Lowercase || p.Uppercase || p.Digits || p.Symbols
}

// LengthValid reports whether n lies in [MinLength, MaxLength].
func LengthValid(n int) bool {
	return n >= MinLength && n <= MaxLength
}

// CounterValid reports whether n is a positive counter.
func CounterValid(n int) bool {
	return n >= 1
}

// ProfileValid is the gate checked before any derivation runs.
func ProfileValid(p Profile) bool {
	return p.Validate() == nil
}

// Validate returns the first failing check as an *InvalidProfileError, or nil.
// Checks run in the order site, options, length, counter.
func (p Profile) Validate() error {
	switch {
	case p.Site == "":
		return &InvalidProfileError{Field: FieldSite}
	case !OptionsValid(p):
		return &InvalidProfileError{Field: FieldOptions}
	case !LengthValid(p.Length):
		return &InvalidProfileError{Field: FieldLength, Value: p.Length}
	case !CounterValid(p.Counter):
		return &InvalidProfileError{Field: FieldCounter, Value: p.Counter}
	}
	return nil
}
