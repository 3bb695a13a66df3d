package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stanley-fork/lesspass/internal/timex"
	"github.com/tidwall/jsonc"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from a zero value so a partial file only overrides
// what it names.
type JsonConfig struct {
	DefaultLogin     *string `json:"default_login"`
	DefaultLowercase *bool   `json:"default_lowercase"`
	DefaultUppercase *bool   `json:"default_uppercase"`
	DefaultDigits    *bool   `json:"default_digits"`
	DefaultSymbols   *bool   `json:"default_symbols"`
	DefaultLength    *int    `json:"default_length"`
	DefaultCounter   *int    `json:"default_counter"`

	CopyAfterGenerate  *bool           `json:"copy_after_generate"`
	KeepMasterPassword *bool           `json:"keep_master_password"`
	ClearAfter         *timex.Duration `json:"clear_after"`
	MaxParallel        *int            `json:"max_parallel"`

	LogLevel  *string `json:"log_level"`
	LogFormat *string `json:"log_format"`
}

// parseJson overlays cfg with the values found in the file at path. An empty
// path leaves cfg untouched.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JsonConfig) apply(cfg *Config) {
	set(&cfg.DefaultLogin, jc.DefaultLogin)
	set(&cfg.DefaultLowercase, jc.DefaultLowercase)
	set(&cfg.DefaultUppercase, jc.DefaultUppercase)
	set(&cfg.DefaultDigits, jc.DefaultDigits)
	set(&cfg.DefaultSymbols, jc.DefaultSymbols)
	set(&cfg.DefaultLength, jc.DefaultLength)
	set(&cfg.DefaultCounter, jc.DefaultCounter)
	set(&cfg.CopyAfterGenerate, jc.CopyAfterGenerate)
	set(&cfg.KeepMasterPassword, jc.KeepMasterPassword)
	set(&cfg.MaxParallel, jc.MaxParallel)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)
	if jc.ClearAfter != nil {
		cfg.ClearAfter = jc.ClearAfter.Duration
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
