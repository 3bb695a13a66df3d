package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs to operate.
// The session type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SetField(ctx context.Context, field, value string) error
	Toggle(ctx context.Context, class string) error
	Step(ctx context.Context, delta int) error
	Show(ctx context.Context) error
	Generate(ctx context.Context) error
	Copy(ctx context.Context) error
	Reveal(ctx context.Context) error
	Fingerprint(ctx context.Context) error
	Reset(ctx context.Context) error
	Forget(ctx context.Context) error
	Expire(ctx context.Context)
}

const helpText = `Commands:
  site <name>          set the site (loads an imported profile when there is one)
  login [name]         set the login
  length <n>           set the password length
  counter <n> | + | -  set, increment or decrement the counter
  toggle <class>       toggle lowercase, uppercase, digits or symbols
  show                 show the current profile
  generate | g         generate the password
  copy                 copy the generated password to the clipboard
  reveal               print the generated password
  fingerprint          show the master password fingerprint
  reset                reset the profile to the defaults
  forget               forget a kept master password
  exit | quit          leave`

// runREPL reads commands from reader until EOF, "exit"/"quit" or ctx is done.
//
// Command errors are printed and the loop continues, so a bad length or an
// invalid profile never ends the session. Expire runs before every command so
// that a stale password is gone before the user acts on it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for ctx.Err() == nil {
		a.Expire(ctx)
		fmt.Fprintf(w, "lesspass %s> ", statusFn())

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		value := strings.Join(args, " ")

		a.Expire(ctx)

		switch cmd {
		case "help", "?":
			fmt.Fprintln(w, helpText)
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args, value); err != nil {
			fmt.Fprintln(w, "error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string, value string) error {
	switch cmd {
	case "site", "login", "length", "counter":
		return a.SetField(ctx, cmd, value)
	case "+":
		return a.Step(ctx, 1)
	case "-":
		return a.Step(ctx, -1)
	case "toggle":
		if len(args) != 1 {
			return fmt.Errorf("usage: toggle <lowercase|uppercase|digits|symbols>")
		}
		return a.Toggle(ctx, args[0])
	case "show":
		return a.Show(ctx)
	case "generate", "g":
		return a.Generate(ctx)
	case "copy":
		return a.Copy(ctx)
	case "reveal":
		return a.Reveal(ctx)
	case "fingerprint":
		return a.Fingerprint(ctx)
	case "reset":
		return a.Reset(ctx)
	case "forget":
		return a.Forget(ctx)
	}
	return fmt.Errorf("unknown command %q (type 'help')", cmd)
}
