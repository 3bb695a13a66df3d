package lesspass

import (
	"encoding/hex"
	"strconv"

	"github.com/stanley-fork/lesspass/internal/cryptox"
)

// Glyph is one element of a master password fingerprint.
type Glyph struct {
	Icon  string
	Color string
}

var fingerprintColors = []string{
	"#000000", "#074750", "#009191", "#FF6CB6", "#FFB5DA",
	"#490092", "#006CDB", "#B66DFF", "#6DB5FE", "#B5DAFE",
	"#920000", "#924900", "#DB6D00", "#24FF24", "#FFFF6D",
}

var fingerprintIcons = []string{
	"hashtag", "heart", "hotel", "university", "plug", "ambulance",
	"bus", "car", "plane", "rocket", "ship", "subway",
	"truck", "yen", "euro", "bitcoin", "dollar", "pound",
	"archive", "chart", "bed", "beer", "bell", "binoculars",
	"cake", "bomb", "briefcase", "bug", "camera", "cart",
	"certificate", "coffee", "cloud", "comment", "cube", "cutlery",
	"database", "diamond", "exclamation", "eye", "flag", "flask",
	"football", "gamepad", "graduation-cap", "key",
}

// Fingerprint returns three glyphs computed from HMAC-SHA256(master, "").
// Showing them while a master password is typed lets the user spot a typo
// without displaying the password. An empty master has no fingerprint.
func Fingerprint(master []byte) ([3]Glyph, bool) {
	var glyphs [3]Glyph
	if len(master) == 0 {
		return glyphs, false
	}

	digest := hex.EncodeToString(cryptox.Digest(master, nil))
	for i := range glyphs {
		n, _ := strconv.ParseUint(digest[i*6:(i+1)*6], 16, 32)
		glyphs[i] = Glyph{
			Icon:  fingerprintIcons[n%uint64(len(fingerprintIcons))],
			Color: fingerprintColors[n%uint64(len(fingerprintColors))],
		}
	}
	return glyphs, true
}
