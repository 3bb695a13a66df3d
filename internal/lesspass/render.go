package lesspass

import (
	"math/big"
	"strings"
)

// render maps entropy onto a password of the given length drawn from classes.
// The password holds at least one character of every class when
// length >= len(classes).
func render(entropy []byte, classes []Class, length int) string {
	var set strings.Builder
	for _, c := range classes {
		set.WriteString(c.Characters())
	}

	quotient := new(big.Int).SetBytes(entropy)
	defer quotient.SetInt64(0)

	password := consume(quotient, set.String(), length-len(classes))

	perClass := make([]byte, 0, len(classes))
	for _, c := range classes {
		perClass = append(perClass, consume(quotient, c.Characters(), 1)...)
	}

	for _, ch := range perClass {
		at := int(divmod(quotient, len(password)))
		password = append(password, 0)
		copy(password[at+1:], password[at:])
		password[at] = ch
	}

	return string(password)
}

// consume draws n characters of alphabet from quotient, which is reduced in
// place.
func consume(quotient *big.Int, alphabet string, n int) []byte {
	out := make([]byte, 0, n+4)
	for i := 0; i < n; i++ {
		out = append(out, alphabet[divmod(quotient, len(alphabet))])
	}
	return out
}

// divmod sets quotient to quotient/d and returns the remainder.
func divmod(quotient *big.Int, d int) int64 {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(quotient, big.NewInt(int64(d)), r)
	quotient.Set(q)
	return r.Int64()
}
