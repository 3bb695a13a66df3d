package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the config flags on fs with the current values of c as
// defaults, so parsing fs overrides only what is given on the command line.
//
// --config is registered too so that fs accepts it; its value was already
// consumed by LoadConfig.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to JSON config file (or $LESSPASS_CONFIG)")
	fs.BoolVarP(&c.CopyAfterGenerate, "copy", "c", c.CopyAfterGenerate, "copy the generated password to the clipboard")
	fs.BoolVar(&c.KeepMasterPassword, "keep-master", c.KeepMasterPassword, "keep the master password in locked memory for the session")
	fs.DurationVar(&c.ClearAfter, "clear-after", c.ClearAfter, "forget the generated password and clear the clipboard after this long (0 disables)")
	fs.IntVar(&c.MaxParallel, "max-parallel", c.MaxParallel, "maximum concurrent derivations")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}
