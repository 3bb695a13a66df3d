package lesspass

import (
	"strconv"

	"github.com/google/uuid"
)

// Bounds and defaults applied to a Profile.
const (
	MinLength      = 5
	MaxLength      = 35
	DefaultLength  = 16
	DefaultCounter = 1
)

// Class is a character class a password may draw from.
type Class int

const (
	Lowercase Class = iota
	Uppercase
	Digits
	Symbols
)

// Classes lists every character class in rendering order.
var Classes = []Class{Lowercase, Uppercase, Digits, Symbols}

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Characters returns the alphabet of the class.
func (c Class) Characters() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digits:
		return digitChars
	case Symbols:
		return symbolChars
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	}
	return "class(" + strconv.Itoa(int(c)) + ")"
}

// ParseClass maps a class name as printed by String back to a Class.
func ParseClass(name string) (Class, bool) {
	for _, c := range Classes {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Profile holds everything except the master password that identifies one
// derivable password.
//
// ID is the identity of a stored profile record and is nil for a profile that
// was never saved. It plays no part in derivation.
type Profile struct {
	ID        *uuid.UUID `json:"id,omitempty" yaml:"id,omitempty"`
	Site      string     `json:"site" yaml:"site"`
	Login     string     `json:"login" yaml:"login"`
	Lowercase bool       `json:"lowercase" yaml:"lowercase"`
	Uppercase bool       `json:"uppercase" yaml:"uppercase"`
	Digits    bool       `json:"digits" yaml:"digits"`
	Symbols   bool       `json:"symbols" yaml:"symbols"`
	Length    int        `json:"length" yaml:"length"`
	Counter   int        `json:"counter" yaml:"counter"`
}

// NewProfile returns a profile for site and login with every class enabled
// and default length and counter.
func NewProfile(site, login string) Profile {
	return Profile{
		Site:      site,
		Login:     login,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
		Length:    DefaultLength,
		Counter:   DefaultCounter,
	}
}

// Enabled reports whether class c is selected.
func (p Profile) Enabled(c Class) bool {
	switch c {
	case Lowercase:
		return p.Lowercase
	case Uppercase:
		return p.Uppercase
	case Digits:
		return p.Digits
	case Symbols:
		return p.Symbols
	}
	return false
}

// SetClass enables or disables class c.
func (p *Profile) SetClass(c Class, on bool) {
	switch c {
	case Lowercase:
		p.Lowercase = on
	case Uppercase:
		p.Uppercase = on
	case Digits:
		p.Digits = on
	case Symbols:
		p.Symbols = on
	}
}

// EnabledClasses returns the selected classes in rendering order.
func (p Profile) EnabledClasses() []Class {
	out := make([]Class, 0, len(Classes))
	for _, c := range Classes {
		if p.Enabled(c) {
			out = append(out, c)
		}
	}
	return out
}
