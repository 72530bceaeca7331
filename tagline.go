package brandkit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Tagline is the brand tagline printed under the wordmark.
const Tagline = "BUILT BY CREW, FOR CREW"

// LetterSpace approximates letter-spacing by putting one space between
// every pair of adjacent characters. The input is NFC-normalized first so
// precomposed letters count as one character.
//
// For an input of n characters the result has 2n-1 characters and never
// starts or ends with the inserted space.
func LetterSpace(s string) string {
	s = norm.NFC.String(s)
	n := utf8.RuneCountInString(s)
	if n < 2 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + n - 1)
	for i, r := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
