package utils

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"
)

func CleanToValidUTF8(s string) string {
	var buf bytes.Buffer
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// skip broken byte
			i++
			continue
		}
		buf.WriteRune(r)
		i += size
	}
	return buf.String()
}

// NormalizeTicker trims and upper-cases user supplied ticker input.
func NormalizeTicker(input string) string {
	return strings.ToUpper(strings.TrimSpace(CleanToValidUTF8(input)))
}

func ToPointer[T any](value T) *T {
	return &value
}

func CapitalizeSentence(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
