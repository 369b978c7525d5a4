package prompt

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidReferences is returned by Validation.Err when the text cites
// images that do not exist.
var ErrInvalidReferences = errors.New("prompt: invalid references")

// token is one "@N" occurrence.
type token struct {
	pos int // rune offset of '@'
	num int // 1-based number as written
}

// scan returns every "@<digits>" token in text. Numbers too large for an
// int saturate at math.MaxInt.
func scan(text string) []token {
	runes := fold(text)
	var toks []token
	for i := 0; i < len(runes); i++ {
		if runes[i] != '@' {
			continue
		}
		j := i + 1
		n := 0
		for j < len(runes) && isDigit(runes[j]) {
			d := int(runes[j] - '0')
			if n > (math.MaxInt-d)/10 {
				n = math.MaxInt
			} else {
				n = n*10 + d
			}
			j++
		}
		if j == i+1 {
			continue
		}
		toks = append(toks, token{pos: i, num: n})
		i = j - 1
	}
	return toks
}

// Extract returns the 0-based image indices referenced in text, sorted
// ascending without duplicates. "@0" is ignored.
func Extract(text string) []int {
	var indices []int
	for _, tok := range scan(text) {
		if tok.num > 0 {
			indices = append(indices, tok.num-1)
		}
	}
	slices.Sort(indices)
	return slices.Compact(indices)
}

// Validation is the result of checking references against the number of
// available images.
type Validation struct {
	// Valid is true when every reference points at an available image,
	// including when there are no references at all.
	Valid bool

	// Invalid lists the offending references as written (1-based).
	Invalid []int
}

// Validate checks every reference in text against available images.
func Validate(text string, available int) Validation {
	var invalid []int
	for _, idx := range Extract(text) {
		if idx >= available {
			invalid = append(invalid, idx+1)
		}
	}
	return Validation{Valid: len(invalid) == 0, Invalid: invalid}
}

// Err returns nil for a valid result, otherwise an error wrapping
// ErrInvalidReferences that names the offending references.
func (v Validation) Err() error {
	if v.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidReferences, formatRefs(v.Invalid))
}

func formatRefs(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = "@" + strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// Candidates returns the 1-based reference numbers offered by the
// autocomplete popup: those whose decimal form starts with search, or all
// of 1..available when search is empty.
func Candidates(available int, search string) []int {
	search = string(fold(search))
	var out []int
	for n := 1; n <= available; n++ {
		if strings.HasPrefix(strconv.Itoa(n), search) {
			out = append(out, n)
		}
	}
	return out
}

// Annotate appends a legend naming every referenced image that has a
// label, so the edit backend knows what "@N" stands for:
//
//	"make @1 smile\n\n(References: @1 = Mina)"
//
// labels[i] describes image i (0-based). Text without labelled references
// is returned unchanged.
func Annotate(text string, labels []string) string {
	var parts []string
	for _, idx := range Extract(text) {
		if idx < len(labels) && labels[idx] != "" {
			parts = append(parts, fmt.Sprintf("@%d = %s", idx+1, labels[idx]))
		}
	}
	if len(parts) == 0 {
		return text
	}
	return text + "\n\n(References: " + strings.Join(parts, ", ") + ")"
}
