// Package pollcode generates, formats, and normalizes the 6-character
// share codes that identify polls. Codes are uppercase alphanumeric,
// displayed as XXX-XXX, and accepted case-insensitively with or without
// separators.
package pollcode

import (
	"errors"
	"math/rand/v2"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of significant characters in a code.
const Length = 6

// ErrMalformedCode is returned by Normalize when the input does not
// reduce to exactly 6 alphanumeric characters.
var ErrMalformedCode = errors.New("malformed code")

// Generate returns a random 6-character code drawn uniformly from A-Z0-9.
// Codes are not guaranteed unique; collisions are acceptable at this
// scale and there is no arbiter to consult.
func Generate() string {
	var b [Length]byte
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b[:])
}

// Format renders a code as two dash-separated groups for readability.
// Purely presentational; Normalize reverses it.
func Format(code string) string {
	if len(code) <= 3 {
		return code
	}
	return code[:3] + "-" + code[3:]
}

// Normalize uppercases raw user input and strips every non-alphanumeric
// character, undoing any display formatting.
func Normalize(raw string) (string, error) {
	var sb strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	code := sb.String()
	if len(code) != Length {
		return "", ErrMalformedCode
	}
	return code, nil
}
