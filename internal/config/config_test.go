package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stanley-fork/lesspass/internal/common"
	"github.com/stanley-fork/lesspass/internal/flagx"
	"github.com/stanley-fork/lesspass/internal/lesspass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.True(t, c.DefaultLowercase && c.DefaultUppercase && c.DefaultDigits && c.DefaultSymbols)
	assert.Equal(t, 16, c.DefaultLength)
	assert.Equal(t, 1, c.DefaultCounter)
	assert.Equal(t, 60*time.Second, c.ClearAfter)
	assert.Equal(t, 2, c.MaxParallel)
	assert.False(t, c.KeepMasterPassword)
	require.NoError(t, c.Validate())
}

func TestNewProfile_UsesDefaults(t *testing.T) {
	c := defaults()
	c.DefaultLogin = "alice"
	c.DefaultSymbols = false
	c.DefaultLength = 20

	p := c.NewProfile("example.com")

	want := lesspass.Profile{
		Site: "example.com", Login: "alice",
		Lowercase: true, Uppercase: true, Digits: true,
		Length: 20, Counter: 1,
	}
	assert.Empty(t, cmp.Diff(want, p))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"no classes", func(c *Config) {
			c.DefaultLowercase, c.DefaultUppercase, c.DefaultDigits, c.DefaultSymbols = false, false, false, false
		}},
		{"length out of range", func(c *Config) { c.DefaultLength = 99 }},
		{"zero counter", func(c *Config) { c.DefaultCounter = 0 }},
		{"zero parallel", func(c *Config) { c.MaxParallel = 0 }},
		{"negative clear", func(c *Config) { c.ClearAfter = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.edit(&c)
			assert.ErrorIs(t, c.Validate(), common.ErrorInvalidConfig)
		})
	}

	c := defaults()
	c.DefaultLength = 3
	assert.ErrorIs(t, c.Validate(), lesspass.ErrInvalidProfile)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lesspass.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	path := writeConfig(t, `{
		// from the settings screen
		"default_login": "alice",
		"default_symbols": false,
		"default_length": 20,
		"clear_after": "30s",
		"max_parallel": 4,
		"log_level": "debug",
	}`)

	t.Run("defaults only", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg, err := LoadConfig(fs, []string{"example.org"})
		require.NoError(t, err)

		want := defaults()
		assert.Empty(t, cmp.Diff(&want, cfg))
		assert.Equal(t, []string{"example.org"}, fs.Args())
	})

	t.Run("json overrides defaults", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg, err := LoadConfig(fs, []string{"--config", path})
		require.NoError(t, err)

		assert.Equal(t, "alice", cfg.DefaultLogin)
		assert.False(t, cfg.DefaultSymbols)
		assert.True(t, cfg.DefaultDigits, "absent keys keep defaults")
		assert.Equal(t, 20, cfg.DefaultLength)
		assert.Equal(t, 30*time.Second, cfg.ClearAfter)
		assert.Equal(t, 4, cfg.MaxParallel)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("flags override json", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg, err := LoadConfig(fs, []string{"--config=" + path, "--clear-after", "5s", "--max-parallel=1", "-c", "--keep-master", "site.org"})
		require.NoError(t, err)

		assert.Equal(t, 5*time.Second, cfg.ClearAfter)
		assert.Equal(t, 1, cfg.MaxParallel)
		assert.True(t, cfg.CopyAfterGenerate)
		assert.True(t, cfg.KeepMasterPassword)
		assert.Equal(t, "alice", cfg.DefaultLogin)
		assert.Equal(t, []string{"site.org"}, fs.Args())
	})

	t.Run("environment names the file", func(t *testing.T) {
		t.Setenv(flagx.ConfigEnv, path)
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg, err := LoadConfig(fs, nil)
		require.NoError(t, err)
		assert.Equal(t, "alice", cfg.DefaultLogin)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv(flagx.ConfigEnv, "")

	t.Run("missing file", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		_, err := LoadConfig(fs, []string{"--config", filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		_, err := LoadConfig(fs, []string{"--config", writeConfig(t, `{"default_length": "long"}`)})
		require.Error(t, err)
	})

	t.Run("invalid defaults", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		_, err := LoadConfig(fs, []string{"--config", writeConfig(t, `{"default_length": 2}`)})
		require.ErrorIs(t, err, common.ErrorInvalidConfig)
	})

	t.Run("bad flag value", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.SetOutput(discardWriter{})
		_, err := LoadConfig(fs, []string{"--max-parallel", "many"})
		require.Error(t, err)
	})
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
