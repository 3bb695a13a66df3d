// Package lesspass derives site passwords from a master password and a
// site profile.
//
// Nothing is stored: the same master password and profile always produce the
// same password, so it can be regenerated whenever it is needed. The scheme
// is LessPass v2:
//
//  1. entropy = PBKDF2-HMAC-SHA256(master, site+login+hex(counter), 100000, 32)
//  2. the entropy, read as a big-endian integer, is consumed by repeated
//     division to pick length-k characters from the enabled classes, one
//     character from each of the k enabled classes, and the insertion point
//     of each of those k characters.
//
// Derivation takes noticeable CPU time. Callers with an interactive loop should run
// it through the generator package rather than calling Derive directly.
//
// Primary API
//
//   - type Profile                         site, login, classes, length, counter
//   - func (Profile) Validate() error      first failing check as *InvalidProfileError
//   - func ProfileValid(Profile) bool      validity gate
//   - func Derive([]byte, Profile)         the password for a profile
//   - func Fingerprint([]byte) [3]Glyph    visual check of a typed master password
package lesspass
