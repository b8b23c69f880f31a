package boundary

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// CharCount returns the number of characters (Unicode code points)
// in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// ByteIndexFromCharIndex converts a character index into a byte offset
// into s. The result never splits a multi-byte character. Indices at or
// past the last character map to len(s).
func ByteIndexFromCharIndex(s string, charIndex int) int {
	if charIndex <= 0 {
		return 0
	}
	ci := 0
	for bi := range s {
		if ci == charIndex {
			return bi
		}
		ci++
	}
	return len(s)
}

// SliceCharRange returns the substring covering the characters in
// [start, end). A reversed range is a caller bug and panics.
func SliceCharRange(s string, start, end int) string {
	if start > end {
		panic(fmt.Sprintf("boundary: reversed char range %d..%d", start, end))
	}
	bs := ByteIndexFromCharIndex(s, start)
	be := ByteIndexFromCharIndex(s, end)
	return s[bs:be]
}

// LineStart returns the character index of the start of the line
// containing charIndex: the position just after the previous '\n',
// or 0 when the index is on the first line.
func LineStart(s string, charIndex int) int {
	start := 0
	ci := 0
	for _, r := range s {
		if ci >= charIndex {
			break
		}
		ci++
		if r == '\n' {
			start = ci
		}
	}
	return start
}

// IsWordChar reports whether r belongs to a word: a letter, a digit,
// or an underscore.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// PreviousWordBoundary returns the character index of the nearest word
// boundary before charIndex: it steps back one character, then
// continues back across the run of characters sharing the word class
// of the character ahead of it. The cursor always moves at least one
// character when charIndex > 0.
func PreviousWordBoundary(s string, charIndex int) int {
	runes := []rune(s)
	i := charIndex
	if i > len(runes) {
		i = len(runes)
	}
	if i == 0 {
		return 0
	}
	i--
	if i == 0 {
		return 0
	}
	class := IsWordChar(runes[i-1])
	for i > 0 && IsWordChar(runes[i-1]) == class {
		i--
	}
	return i
}

// NextWordBoundary is the forward counterpart of PreviousWordBoundary:
// it steps forward one character, then continues across the run of
// characters sharing the word class of the character after it.
func NextWordBoundary(s string, charIndex int) int {
	runes := []rune(s)
	n := len(runes)
	i := charIndex
	if i >= n {
		return n
	}
	i++
	if i >= n {
		return n
	}
	class := IsWordChar(runes[i])
	for i < n && IsWordChar(runes[i]) == class {
		i++
	}
	return i
}
