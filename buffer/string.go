package buffer

import (
	"unicode/utf8"

	"github.com/dshills/textbuf/boundary"
)

// String is a growable, always-mutable text buffer backed by an
// ordinary Go string. The zero value is an empty buffer ready to use:
//
//	var s buffer.String
//	s.InsertText("hello", 0)
type String string

// IsMutable always returns true.
func (s *String) IsMutable() bool { return true }

// String returns the current contents.
func (s *String) String() string { return string(*s) }

// InsertText splices text in before the character at charIndex and
// returns the number of characters inserted.
func (s *String) InsertText(text string, charIndex int) int {
	t := string(*s)
	bi := boundary.ByteIndexFromCharIndex(t, charIndex)
	*s = String(t[:bi] + text + t[bi:])
	return utf8.RuneCountInString(text)
}

// DeleteCharRange removes the characters in [r.Start, r.End).
func (s *String) DeleteCharRange(r Range) {
	t := string(*s)
	bs, be := byteSpan(t, r)
	*s = String(t[:bs] + t[be:])
}

// Clear empties the buffer.
func (s *String) Clear() { *s = "" }

// ReplaceWith swaps in new contents.
func (s *String) ReplaceWith(text string) { *s = String(text) }

// Take returns the contents and empties the buffer.
func (s *String) Take() string {
	out := string(*s)
	*s = ""
	return out
}
