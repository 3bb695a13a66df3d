package cli

import (
	"github.com/spf13/pflag"
	"github.com/stanley-fork/lesspass/internal/lesspass"
)

// options are the per-invocation flags of one-shot mode.
type options struct {
	length  int
	counter int

	lowercase, uppercase, digits, symbols         bool
	noLowercase, noUppercase, noDigits, noSymbols bool

	prompt       bool
	profilesPath string
	fingerprint  bool
	version      bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.IntVarP(&o.length, "length", "L", lesspass.DefaultLength, "password length")
	fs.IntVarP(&o.counter, "counter", "C", lesspass.DefaultCounter, "password counter")

	fs.BoolVarP(&o.lowercase, "lowercase", "l", false, "include lowercase letters (only the classes given)")
	fs.BoolVarP(&o.uppercase, "uppercase", "u", false, "include uppercase letters (only the classes given)")
	fs.BoolVarP(&o.digits, "digits", "d", false, "include digits (only the classes given)")
	fs.BoolVarP(&o.symbols, "symbols", "s", false, "include symbols (only the classes given)")

	fs.BoolVar(&o.noLowercase, "no-lowercase", false, "exclude lowercase letters")
	fs.BoolVar(&o.noUppercase, "no-uppercase", false, "exclude uppercase letters")
	fs.BoolVar(&o.noDigits, "no-digits", false, "exclude digits")
	fs.BoolVar(&o.noSymbols, "no-symbols", false, "exclude symbols")

	fs.BoolVarP(&o.prompt, "prompt", "p", false, "prompt for site and login")
	fs.StringVar(&o.profilesPath, "profiles", "", "JSON or YAML file of saved profiles to look sites up in")
	fs.BoolVar(&o.fingerprint, "fingerprint", false, "show the master password fingerprint")
	fs.BoolVarP(&o.version, "version", "v", false, "print build information and exit")
}

// apply overlays the flags that were given on p. Selecting any class with
// -l/-u/-d/-s restricts the password to exactly those classes; the --no-*
// flags then remove classes.
func (o *options) apply(fs *pflag.FlagSet, p *lesspass.Profile) {
	if fs.Changed("length") {
		p.Length = o.length
	}
	if fs.Changed("counter") {
		p.Counter = o.counter
	}

	only := map[lesspass.Class]bool{
		lesspass.Lowercase: o.lowercase,
		lesspass.Uppercase: o.uppercase,
		lesspass.Digits:    o.digits,
		lesspass.Symbols:   o.symbols,
	}
	if o.lowercase || o.uppercase || o.digits || o.symbols {
		for c, on := range only {
			p.SetClass(c, on)
		}
	}

	exclude := map[lesspass.Class]bool{
		lesspass.Lowercase: o.noLowercase,
		lesspass.Uppercase: o.noUppercase,
		lesspass.Digits:    o.noDigits,
		lesspass.Symbols:   o.noSymbols,
	}
	for c, off := range exclude {
		if off {
			p.SetClass(c, false)
		}
	}
}
