package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"
	"github.com/stanley-fork/lesspass/internal/buildinfo"
	"github.com/stanley-fork/lesspass/internal/clipboard"
	"github.com/stanley-fork/lesspass/internal/config"
	"github.com/stanley-fork/lesspass/internal/generator"
	"github.com/stanley-fork/lesspass/internal/lesspass"
	"github.com/stanley-fork/lesspass/internal/logging"
	"github.com/stanley-fork/lesspass/internal/profiles"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type App struct {
	config   *config.Config
	log      logging.Logger
	gen      *generator.Generator
	clip     *clipboard.Clipboard
	reader   *bufio.Reader
	out      io.Writer
	errOut   io.Writer
	profiles []lesspass.Profile
	now      func() time.Time
}

// NewApp wires an App around the given streams. Passwords go to out; prompts,
// messages and clipboard sequences go to errOut.
func NewApp(c *config.Config, log logging.Logger, in io.Reader, out, errOut io.Writer) *App {
	return &App{
		config: c,
		log:    log,
		gen:    generator.New(c.MaxParallel, log),
		clip:   clipboard.New(errOut),
		reader: bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		now:    time.Now,
	}
}

// LoadProfiles makes the profiles in path available for lookup by site.
func (a *App) LoadProfiles(path string) error {
	list, err := profiles.Load(path)
	if err != nil {
		return err
	}
	a.profiles = list
	a.log.Debug(context.Background(), "profiles loaded", "path", path, "count", len(list))
	return nil
}

// profileFor returns the imported profile for site and login, or a new one
// seeded from the config defaults.
func (a *App) profileFor(site, login string) lesspass.Profile {
	if p, err := profiles.Find(a.profiles, site, login); err == nil {
		return p
	}
	p := a.config.NewProfile(site)
	if login != "" {
		p.Login = login
	}
	return p
}

// Run parses args, then runs one-shot or interactive mode. It returns the
// process exit code.
func Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet("lesspass", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(errOut, "Usage: lesspass [flags] [SITE [LOGIN]]")
		fmt.Fprintln(errOut, "Without SITE an interactive session starts.")
		fmt.Fprintln(errOut)
		fmt.Fprint(errOut, fs.FlagUsages())
	}

	var opts options
	opts.bind(fs)

	cfg, err := config.LoadConfig(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		fmt.Fprintln(errOut, "lesspass:", err)
		return ExitUsage
	}

	if opts.version {
		buildinfo.PrintBuildData(out)
		return ExitOK
	}

	log, err := logging.New(errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(errOut, "lesspass:", err)
		return ExitUsage
	}

	app := NewApp(cfg, log, in, out, errOut)
	if opts.profilesPath != "" {
		if err := app.LoadProfiles(opts.profilesPath); err != nil {
			fmt.Fprintln(errOut, "lesspass:", err)
			return ExitError
		}
	}

	if fs.NArg() > 2 {
		fs.Usage()
		return ExitUsage
	}

	if fs.NArg() == 0 && !opts.prompt {
		err = app.Interactive(ctx)
	} else {
		err = app.OneShot(ctx, fs, &opts)
	}
	if err != nil {
		fmt.Fprintln(errOut, "lesspass:", err)
		return ExitError
	}
	return ExitOK
}
