package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/stanley-fork/lesspass/internal/lesspass"
)

// printFingerprint renders the master password fingerprint as three coloured
// glyphs. Colour is dropped when w is not a terminal.
func printFingerprint(w io.Writer, master []byte) {
	glyphs, ok := lesspass.Fingerprint(master)
	if !ok {
		return
	}

	out := termenv.NewOutput(w)
	parts := make([]string, 0, len(glyphs))
	for _, g := range glyphs {
		parts = append(parts, out.String("■ "+g.Icon).Foreground(out.Color(g.Color)).String())
	}
	fmt.Fprintln(w, "Fingerprint:", strings.Join(parts, "  "))
}
