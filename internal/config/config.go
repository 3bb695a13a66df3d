package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/stanley-fork/lesspass/internal/common"
	"github.com/stanley-fork/lesspass/internal/flagx"
	"github.com/stanley-fork/lesspass/internal/lesspass"
)

// Config holds runtime settings for the lesspass CLI.
//
// The Default* fields seed every new profile. ClearAfter of zero disables
// the clear timer.
type Config struct {
	DefaultLogin     string
	DefaultLowercase bool
	DefaultUppercase bool
	DefaultDigits    bool
	DefaultSymbols   bool
	DefaultLength    int
	DefaultCounter   int

	CopyAfterGenerate  bool
	KeepMasterPassword bool
	ClearAfter         time.Duration
	MaxParallel        int

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DefaultLogin = ""
	c.DefaultLowercase = true
	c.DefaultUppercase = true
	c.DefaultDigits = true
	c.DefaultSymbols = true
	c.DefaultLength = lesspass.DefaultLength
	c.DefaultCounter = lesspass.DefaultCounter
	c.CopyAfterGenerate = false
	c.KeepMasterPassword = false
	c.ClearAfter = 60 * time.Second
	c.MaxParallel = 2
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// NewProfile returns a profile for site seeded with the configured defaults.
func (c *Config) NewProfile(site string) lesspass.Profile {
	return lesspass.Profile{
		Site:      site,
		Login:     c.DefaultLogin,
		Lowercase: c.DefaultLowercase,
		Uppercase: c.DefaultUppercase,
		Digits:    c.DefaultDigits,
		Symbols:   c.DefaultSymbols,
		Length:    c.DefaultLength,
		Counter:   c.DefaultCounter,
	}
}

// Validate checks that the profile defaults satisfy the derivation bounds.
func (c *Config) Validate() error {
	probe := c.NewProfile("probe")
	if err := probe.Validate(); err != nil {
		return fmt.Errorf("%w: defaults: %w", common.ErrorInvalidConfig, err)
	}
	if c.MaxParallel < 1 {
		return fmt.Errorf("%w: max_parallel must be positive, got %d", common.ErrorInvalidConfig, c.MaxParallel)
	}
	if c.ClearAfter < 0 {
		return fmt.Errorf("%w: clear_after must not be negative", common.ErrorInvalidConfig)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, overlays the JSON file
// (if any), registers the config flags on fs and parses args into it. Callers
// register their own flags on fs first and read positionals from fs.Args().
func LoadConfig(fs *pflag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, flagx.ConfigPath(args)); err != nil {
		return nil, err
	}

	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
