package prompt

import "golang.org/x/text/width"

// fold maps full-width forms to their narrow equivalents rune by rune, so
// offsets into the result are offsets into the original text.
func fold(text string) []rune {
	runes := []rune(text)
	for i, r := range runes {
		if r < 0x80 {
			continue
		}
		if f := width.LookupRune(r).Folded(); f != 0 {
			runes[i] = f
		}
	}
	return runes
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
