package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stanley-fork/lesspass/internal/common"
	"github.com/stanley-fork/lesspass/internal/lesspass"
	"github.com/stanley-fork/lesspass/internal/profiles"
	"github.com/stanley-fork/lesspass/internal/secret"
)

var (
	errNoPassword   = errors.New("no password generated yet")
	errUnknownField = errors.New("unknown field")
)

// session is the state of one interactive run: the profile being edited,
// the last generated password and, with KeepMasterPassword, the master
// password.
type session struct {
	app      *App
	profile  lesspass.Profile
	password string
	expires  time.Time
	master   *secret.Buffer
}

func (a *App) newSession() *session {
	return &session{app: a, profile: a.config.NewProfile("")}
}

// Interactive runs the REPL until the user exits, stdin ends or ctx is done.
func (a *App) Interactive(ctx context.Context) error {
	s := a.newSession()
	defer s.close(ctx)

	fmt.Fprintln(a.out, "LessPass (type 'help' for commands)")
	runREPL(ctx, s, s.status, a.reader, a.out)
	return nil
}

func (s *session) status() string {
	if s.profile.Site == "" {
		return "(new)"
	}
	st := s.profile.Site
	if s.profile.Login != "" {
		st += " " + s.profile.Login
	}
	st += " #" + strconv.Itoa(s.profile.Counter)
	if s.master != nil {
		st += " *"
	}
	return "(" + st + ")"
}

// dropPassword forgets the generated password; the profile it was derived
// from changed or its time ran out.
func (s *session) dropPassword() {
	s.password = ""
	s.expires = time.Time{}
}

func (s *session) SetField(ctx context.Context, field, value string) error {
	switch field {
	case "site":
		// An imported profile for the site replaces the form; otherwise only
		// the site changes and earlier edits stay.
		if p, err := profiles.Find(s.app.profiles, value, s.profile.Login); err == nil {
			s.profile = p
		} else {
			s.profile.Site = value
			s.profile.ID = nil
		}
	case "login":
		s.profile.Login = value
	case "length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("length: %w", err)
		}
		if !lesspass.LengthValid(n) {
			return &lesspass.InvalidProfileError{Field: lesspass.FieldLength, Value: n}
		}
		s.profile.Length = n
	case "counter":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("counter: %w", err)
		}
		if !lesspass.CounterValid(n) {
			return &lesspass.InvalidProfileError{Field: lesspass.FieldCounter, Value: n}
		}
		s.profile.Counter = n
	default:
		return fmt.Errorf("%w %q", errUnknownField, field)
	}
	s.dropPassword()
	return nil
}

// Toggle flips a character class, refusing to disable the last one.
func (s *session) Toggle(ctx context.Context, name string) error {
	c, ok := lesspass.ParseClass(name)
	if !ok {
		return fmt.Errorf("unknown character class %q (lowercase, uppercase, digits, symbols)", name)
	}
	next := s.profile
	next.SetClass(c, !next.Enabled(c))
	if !lesspass.OptionsValid(next) {
		return &lesspass.InvalidProfileError{Field: lesspass.FieldOptions}
	}
	s.profile = next
	s.dropPassword()
	return nil
}

// Step moves the counter by delta, refusing to leave the valid range.
func (s *session) Step(ctx context.Context, delta int) error {
	n := s.profile.Counter + delta
	if !lesspass.CounterValid(n) {
		return &lesspass.InvalidProfileError{Field: lesspass.FieldCounter, Value: n}
	}
	s.profile.Counter = n
	s.dropPassword()
	return nil
}

func (s *session) Show(ctx context.Context) error {
	p := s.profile
	w := s.app.out

	classes := make([]string, 0, len(lesspass.Classes))
	for _, c := range p.EnabledClasses() {
		classes = append(classes, c.String())
	}

	fmt.Fprintf(w, "site:     %s\n", p.Site)
	fmt.Fprintf(w, "login:    %s\n", p.Login)
	fmt.Fprintf(w, "classes:  %s\n", strings.Join(classes, ", "))
	fmt.Fprintf(w, "length:   %d\n", p.Length)
	fmt.Fprintf(w, "counter:  %d\n", p.Counter)
	if p.ID != nil {
		fmt.Fprintf(w, "id:       %s\n", p.ID)
	}
	if s.password != "" {
		fmt.Fprintln(w, "password: ******** (reveal to show)")
	}
	return nil
}

// masterPassword returns the kept master password or asks for one. release
// wipes a password that is not kept.
func (s *session) masterPassword(ctx context.Context) (master []byte, release func(), err error) {
	if s.master != nil {
		return s.master.Bytes(), func() {}, nil
	}

	pw, err := GetMasterPassword(s.app.reader, s.app.errOut)
	if err != nil {
		return nil, nil, fmt.Errorf("master password: %w", err)
	}

	if !s.app.config.KeepMasterPassword {
		return pw, func() { common.WipeByteArray(pw) }, nil
	}

	buf, err := secret.NewFromBytes(pw)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, nil, err
	}
	if !buf.Locked() {
		s.app.log.Warn(ctx, "master password memory could not be locked against swapping")
	}
	s.master = buf
	return buf.Bytes(), func() {}, nil
}

func (s *session) Generate(ctx context.Context) error {
	if err := s.profile.Validate(); err != nil {
		return err
	}

	master, release, err := s.masterPassword(ctx)
	if err != nil {
		return err
	}
	defer release()

	password, err := s.app.gen.Generate(ctx, master, s.profile)
	if err != nil {
		return err
	}

	s.password = password
	if d := s.app.config.ClearAfter; d > 0 {
		s.expires = s.app.now().Add(d)
	}

	if s.app.config.CopyAfterGenerate {
		return s.Copy(ctx)
	}
	fmt.Fprintln(s.app.out, "Password generated ('reveal' to show, 'copy' to copy)")
	return nil
}

func (s *session) Copy(ctx context.Context) error {
	if s.password == "" {
		return errNoPassword
	}
	if err := s.app.clip.Copy(s.password, s.app.config.ClearAfter); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintln(s.app.out, "Copied to clipboard")
	return nil
}

func (s *session) Reveal(ctx context.Context) error {
	if s.password == "" {
		return errNoPassword
	}
	fmt.Fprintln(s.app.out, s.password)
	return nil
}

func (s *session) Fingerprint(ctx context.Context) error {
	master, release, err := s.masterPassword(ctx)
	if err != nil {
		return err
	}
	defer release()

	printFingerprint(s.app.out, master)
	return nil
}

// Reset puts the profile back to the configured defaults.
func (s *session) Reset(ctx context.Context) error {
	s.profile = s.app.config.NewProfile("")
	s.dropPassword()
	return nil
}

// Forget drops a kept master password.
func (s *session) Forget(ctx context.Context) error {
	if s.master == nil {
		return nil
	}
	err := s.master.Close()
	s.master = nil
	fmt.Fprintln(s.app.out, "Master password forgotten")
	return err
}

// Expire resets the form once a generated password outlives ClearAfter.
func (s *session) Expire(ctx context.Context) {
	if s.password == "" || s.expires.IsZero() || s.app.now().Before(s.expires) {
		return
	}
	s.profile = s.app.config.NewProfile("")
	s.dropPassword()
	s.app.log.Debug(ctx, "generated password expired")
	fmt.Fprintln(s.app.out, "Generated password cleared")
}

func (s *session) close(ctx context.Context) {
	if err := s.app.clip.Flush(); err != nil {
		s.app.log.Warn(ctx, "clearing clipboard failed", "error", err)
	}
	_ = s.Forget(ctx)
	s.dropPassword()
}
