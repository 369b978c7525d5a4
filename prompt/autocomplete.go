package prompt

import (
	"strconv"
	"unicode/utf8"
)

// Context describes whether the "@" autocomplete popup should be open for
// a cursor position.
type Context struct {
	Show bool

	// Trigger is the rune offset of the "@", or -1 when Show is false.
	Trigger int

	// Search is the digits typed between "@" and the cursor.
	Search string
}

// AutocompleteContext scans backwards from the rune before cursor. The
// popup opens when an "@" is reached through digits only; whitespace or
// any other character closes it, as does reaching the start of the text.
func AutocompleteContext(text string, cursor int) Context {
	runes := fold(text)
	cursor = clampPos(cursor, len(runes))

	for i := cursor - 1; i >= 0; i-- {
		r := runes[i]
		if r == '@' {
			return Context{Show: true, Trigger: i, Search: string(runes[i+1 : cursor])}
		}
		if !isDigit(r) {
			break
		}
	}
	return Context{Trigger: -1}
}

// Insertion is the text after a reference was inserted, with the cursor
// placed right after it.
type Insertion struct {
	Text   string
	Cursor int
}

// Insert replaces the runes in [trigger, end) with "@<number> " and moves
// the cursor past the trailing space. number is 1-based and used as is;
// offering only valid numbers is up to the caller. Offsets are clamped
// into the text.
func Insert(text string, trigger, end, number int) Insertion {
	runes := []rune(text)
	trigger = clampPos(trigger, len(runes))
	end = max(clampPos(end, len(runes)), trigger)

	ref := "@" + strconv.Itoa(number) + " "
	out := make([]rune, 0, len(runes)-(end-trigger)+len(ref))
	out = append(out, runes[:trigger]...)
	out = append(out, []rune(ref)...)
	out = append(out, runes[end:]...)

	return Insertion{Text: string(out), Cursor: trigger + utf8.RuneCountInString(ref)}
}

func clampPos(pos, n int) int {
	return max(0, min(pos, n))
}
