// Package prompt implements inline image references in edit instructions.
//
// Users cite the currently available reference images positionally:
// "@1" is the first image, "@2" the second, and so on. Internally indices
// are 0-based. The package extracts and validates references, drives the
// "@" autocomplete popup and splices a chosen reference back into the
// text.
//
// All positions are rune offsets into the text. Full-width "＠" and
// full-width digits, as produced by CJK input methods, are treated like
// their ASCII forms.
//
// Every function is pure and recomputes its result from the text it is
// given; nothing is cached between calls.
package prompt
