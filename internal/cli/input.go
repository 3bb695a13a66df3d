package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stanley-fork/lesspass/internal/common"
	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	stdinFd      = func() int { return int(os.Stdin.Fd()) }
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned. An empty answer yields def.
//
// Example prompt format:
//
//	Site [example.org]: _
func GetSimpleText(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// readLine returns the next line without its line ending.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetMasterPassword reads the master password. On a terminal it is read
// without echo after a prompt on w; otherwise the next line of reader is
// used verbatim, minus its line ending.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetMasterPassword(reader *bufio.Reader, w io.Writer) ([]byte, error) {
	fd := stdinFd()
	if !isTerminal(fd) {
		line, err := reader.ReadBytes('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			common.WipeByteArray(line)
			if errors.Is(err, io.EOF) {
				return nil, common.ErrorEmptyInput
			}
			return nil, err
		}
		pw := trimEOL(line)
		if len(pw) == 0 {
			return nil, common.ErrorEmptyInput
		}
		return pw, nil
	}

	if _, err := fmt.Fprint(w, "Master password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, common.ErrorEmptyInput
	}
	return pw, nil
}

func trimEOL(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b[len(b)-1] = 0
		b = b[:len(b)-1]
	}
	return b
}
