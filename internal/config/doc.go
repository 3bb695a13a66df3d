// Package config loads runtime configuration for the lesspass CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by --config or $LESSPASS_CONFIG. Comments and
//     trailing commas are allowed.
//  3. Command-line flags bound by (*Config).BindFlags, which override earlier values.
//
// Supported flags
//
//	--config string        path to the JSON config file
//	-c, --copy             copy the generated password to the clipboard
//	--keep-master          keep the master password for the whole session
//	--clear-after duration drop the generated password and clear the clipboard after this long
//	--max-parallel int     maximum concurrent derivations
//	--log-level string     debug, info, warn or error
//	--log-format string    text or json
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "60s" or integer
// nanoseconds:
//
//	{
//	  // profile defaults
//	  "default_login": "alice@example.org",
//	  "default_lowercase": true,
//	  "default_uppercase": true,
//	  "default_digits": true,
//	  "default_symbols": false,
//	  "default_length": 16,
//	  "default_counter": 1,
//
//	  "copy_after_generate": true,
//	  "keep_master_password": false,
//	  "clear_after": "60s",
//	  "max_parallel": 2,
//	  "log_level": "info",
//	  "log_format": "text",
//	}
package config
