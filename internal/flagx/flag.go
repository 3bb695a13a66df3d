// Package flagx pre-scans command-line arguments for flags that must be known
// before the main flag set is parsed, such as the config file path.
package flagx

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// ConfigEnv names the environment variable consulted when no --config flag is given.
const ConfigEnv = "LESSPASS_CONFIG"

// FilterArgs returns the subset of args made of the flags listed in
// allowedFlags together with their values. Scanning stops at "--".
//
// Supported formats:
//  1. Flag and value as separate arguments:  --config conf.json
//  2. Flag and value combined with '=':      --config=conf.json
//
// A separate value is only taken when the next argument does not start with
// '-'. The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// getenv is a test seam for os.Getenv.
var getenv = os.Getenv

// ConfigPath returns the config file named by --config in args, falling back
// to $LESSPASS_CONFIG. An empty string means no config file.
//
// Only --config is parsed here; the remaining flags are left to the caller's
// own flag set.
func ConfigPath(args []string) string {
	var path string

	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.SetOutput(io.Discard)
	_ = fs.Parse(FilterArgs(args, []string{"--config"}))

	if path == "" {
		path = getenv(ConfigEnv)
	}
	return path
}
