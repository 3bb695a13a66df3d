// Package cli is the lesspass command-line front end.
//
// Two modes share one App:
//
//   - one-shot: `lesspass [flags] SITE [LOGIN]` prompts for the master
//     password, prints (or copies) the password and exits;
//   - interactive: `lesspass` with no site starts a REPL that edits a profile
//     field by field and generates on demand.
//
// The master password is read without echo when stdin is a terminal and as
// the first line of stdin otherwise. It is never printed or logged. With
// --keep-master the REPL holds it in a locked secret.Buffer between
// generations; otherwise it is asked for and wiped on every generation.
//
// Derivation runs through generator.Generator, so Ctrl-C abandons a slow
// derivation instead of waiting for it.
package cli
