// Package cryptox wraps the primitives used for password derivation.
package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters of the LessPass v2 scheme.
const (
	Iterations = 100000
	KeyLength  = 32
)

var ErrEmptySecret = errors.New("empty secret")

// Stretch derives KeyLength bytes of entropy from secret and salt with
// PBKDF2-HMAC-SHA256 at Iterations rounds.
//
// The returned slice belongs to the caller, who should wipe it when done
// (see common.WipeByteArray).
func Stretch(secret, salt []byte) ([]byte, error) {
	return StretchWith(secret, salt, Iterations, KeyLength)
}

// StretchWith is Stretch with explicit cost parameters.
func StretchWith(secret, salt []byte, iterations, keyLength int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if iterations < 1 || keyLength < 1 {
		return nil, errors.New("pbkdf2: iterations and key length must be positive")
	}
	return pbkdf2.Key(secret, salt, iterations, keyLength, sha256.New), nil
}

// Digest returns HMAC-SHA256(key, message).
func Digest(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
