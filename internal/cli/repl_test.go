package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls   []string
	expired int
	failOn  string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	if call == f.failOn {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeExec) SetField(_ context.Context, field, value string) error {
	return f.record(field + "=" + value)
}
func (f *fakeExec) Toggle(_ context.Context, class string) error { return f.record("toggle " + class) }
func (f *fakeExec) Step(_ context.Context, delta int) error {
	if delta > 0 {
		return f.record("+")
	}
	return f.record("-")
}
func (f *fakeExec) Show(context.Context) error        { return f.record("show") }
func (f *fakeExec) Generate(context.Context) error    { return f.record("generate") }
func (f *fakeExec) Copy(context.Context) error        { return f.record("copy") }
func (f *fakeExec) Reveal(context.Context) error      { return f.record("reveal") }
func (f *fakeExec) Fingerprint(context.Context) error { return f.record("fingerprint") }
func (f *fakeExec) Reset(context.Context) error       { return f.record("reset") }
func (f *fakeExec) Forget(context.Context) error      { return f.record("forget") }
func (f *fakeExec) Expire(context.Context)            { f.expired++ }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"site example.org",
		"login John Doe",
		"length 20",
		"counter 3",
		"+",
		"-",
		"toggle symbols",
		"",
		"show",
		"g",
		"generate",
		"copy",
		"reveal",
		"fingerprint",
		"reset",
		"forget",
		"exit",
		"show",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "(status)" }, rdr(input), &out)

	want := []string{
		"site=example.org", "login=John Doe", "length=20", "counter=3",
		"+", "-", "toggle symbols", "show", "generate", "generate",
		"copy", "reveal", "fingerprint", "reset", "forget",
	}
	assert.Equal(t, want, exec.calls, "commands after exit must not run")
	assert.Contains(t, out.String(), "lesspass (status)> ")
	assert.Contains(t, out.String(), "generate | g")
	assert.Contains(t, out.String(), "Bye!")
	assert.Positive(t, exec.expired)
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	exec := &fakeExec{failOn: "generate"}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, rdr("generate\nfoobar\ntoggle\nshow\n"), &out)

	assert.Equal(t, []string{"generate", "show"}, exec.calls)
	got := out.String()
	assert.Contains(t, got, "error: boom")
	assert.Contains(t, got, `error: unknown command "foobar"`)
	assert.Contains(t, got, "error: usage: toggle")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("show"), &bytes.Buffer{})
	assert.Equal(t, []string{"show"}, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("show\n"), &bytes.Buffer{})
	assert.Empty(t, exec.calls)
}
