package cli

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/stanley-fork/lesspass/internal/common"
)

// OneShot generates a single password for the site and login given as
// positional arguments (or prompted for with -p), then returns.
func (a *App) OneShot(ctx context.Context, fs *pflag.FlagSet, opts *options) error {
	site, login := fs.Arg(0), fs.Arg(1)

	if opts.prompt {
		var err error
		if site, err = GetSimpleText(a.reader, "Site", site, a.errOut); err != nil {
			return err
		}
		if login, err = GetSimpleText(a.reader, "Login", login, a.errOut); err != nil {
			return err
		}
	}

	p := a.profileFor(site, login)
	opts.apply(fs, &p)
	if err := p.Validate(); err != nil {
		return err
	}

	master, err := GetMasterPassword(a.reader, a.errOut)
	if err != nil {
		return fmt.Errorf("master password: %w", err)
	}
	defer common.WipeByteArray(master)

	if opts.fingerprint {
		printFingerprint(a.errOut, master)
	}

	password, err := a.gen.Generate(ctx, master, p)
	if err != nil {
		return err
	}

	if a.config.CopyAfterGenerate {
		if err := a.clip.Copy(password, 0); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.errOut, "Copied to clipboard")
		return nil
	}

	fmt.Fprintln(a.out, password)
	return nil
}
