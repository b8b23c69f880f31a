package buffer

import (
	"fmt"
	"math"

	"github.com/dshills/textbuf/boundary"
	"github.com/dshills/textbuf/cursor"
)

// TabSize is the number of space characters treated as one indentation
// step by DecreaseIndentation.
const TabSize = 4

// NoCharLimit disables the character limit of InsertTextAt.
const NoCharLimit = math.MaxInt

// Range is a half-open character range [Start, End). Both bounds are
// character indices, not byte offsets.
type Range struct {
	Start int
	End   int
}

// NewRange creates a character range.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of characters covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// TextBuffer is the capability contract editing code works against.
// Each storage variant supplies these four primitives; everything else
// in this package is derived from them and works uniformly across
// variants.
type TextBuffer interface {
	// IsMutable reports whether the contents can be edited. It is a
	// property of the variant, not of the instance: a View is never
	// mutable, a String always is.
	IsMutable() bool

	// String returns the current contents. Always valid UTF-8.
	String() string

	// InsertText inserts text so its first character lands immediately
	// before the character at charIndex, or at the end when charIndex
	// is past the last character. It returns how many characters were
	// actually inserted, which may be fewer than text holds for
	// read-only or capacity-limited variants.
	InsertText(text string, charIndex int) int

	// DeleteCharRange removes the characters in [r.Start, r.End).
	// A reversed range, or one starting past the end of the contents,
	// is a caller bug and panics; r.End alone may point past the end
	// and clamps. Immutable variants treat this as a no-op.
	DeleteCharRange(r Range)
}

// Clearer is implemented by variants that can empty themselves in one
// step. Clear uses it instead of the generic full-range delete.
type Clearer interface {
	Clear()
}

// Replacer is implemented by variants that can swap in new contents in
// one step. ReplaceWith uses it instead of clear-then-insert.
type Replacer interface {
	ReplaceWith(text string)
}

// Taker is implemented by variants that can hand over their contents
// without an extra copy. Take uses it when present.
type Taker interface {
	Take() string
}

// CharCount returns the number of characters in b.
func CharCount(b TextBuffer) int {
	return boundary.CharCount(b.String())
}

// CharRangeText reads the characters in r without modifying b.
func CharRangeText(b TextBuffer, r Range) string {
	return boundary.SliceCharRange(b.String(), r.Start, r.End)
}

// ByteIndexFromCharIndex converts a character index into a byte offset
// into b's contents. Indices past the last character clamp to the byte
// length.
func ByteIndexFromCharIndex(b TextBuffer, charIndex int) int {
	return boundary.ByteIndexFromCharIndex(b.String(), charIndex)
}

// Clear removes all characters from b.
func Clear(b TextBuffer) {
	if c, ok := b.(Clearer); ok {
		c.Clear()
		return
	}
	b.DeleteCharRange(Range{Start: 0, End: CharCount(b)})
}

// ReplaceWith replaces the contents of b with text.
func ReplaceWith(b TextBuffer, text string) {
	if r, ok := b.(Replacer); ok {
		r.ReplaceWith(text)
		return
	}
	Clear(b)
	b.InsertText(text, 0)
}

// Take returns the contents of b and clears it.
func Take(b TextBuffer) string {
	if t, ok := b.(Taker); ok {
		return t.Take()
	}
	s := b.String()
	Clear(b)
	return s
}

// InsertTextAt inserts as much of text as fits without the total
// character count of b exceeding charLimit, truncating at a full
// character boundary, and advances c by the number of characters
// actually inserted. Pass NoCharLimit for unbounded insertion.
func InsertTextAt(b TextBuffer, c *cursor.CCursor, text string, charLimit int) {
	if charLimit < NoCharLimit {
		cutoff := charLimit - CharCount(b)
		if cutoff < 0 {
			cutoff = 0
		}
		text = text[:boundary.ByteIndexFromCharIndex(text, cutoff)]
	}
	*c = c.Add(b.InsertText(text, c.Index))
}

// DecreaseIndentation removes one step of indentation from the line
// containing c: a single leading tab, or TabSize leading spaces. Lines
// indented some other way are left alone. The cursor shifts left by
// the number of characters removed unless it already sat at the line
// start, where it keeps pointing at the new first character.
func DecreaseIndentation(b TextBuffer, c *cursor.CCursor) {
	s := b.String()
	lineStart := boundary.LineStart(s, c.Index)

	removed := 0
	if boundary.SliceCharRange(s, lineStart, lineStart+1) == "\t" {
		removed = 1
	} else if allSpaces(boundary.SliceCharRange(s, lineStart, lineStart+TabSize)) {
		removed = TabSize
	}
	if removed == 0 {
		return
	}

	b.DeleteCharRange(Range{Start: lineStart, End: lineStart + removed})
	if c.Index != lineStart {
		*c = c.Sub(removed)
	}
}

func allSpaces(s string) bool {
	for _, r := range s {
		if r != ' ' {
			return false
		}
	}
	return true
}

// DeleteSelected removes the selected characters and returns a cursor
// at the start of the removed range.
func DeleteSelected(b TextBuffer, sel cursor.Selection) cursor.CCursor {
	minC, maxC := sel.Sorted()
	return DeleteCCursorRange(b, minC.CCursor, maxC.CCursor)
}

// DeleteCCursorRange removes the characters between two cursors, which
// must already be in (min, max) order, and returns a cursor at the
// start of the removed range.
func DeleteCCursorRange(b TextBuffer, minC, maxC cursor.CCursor) cursor.CCursor {
	b.DeleteCharRange(Range{Start: minC.Index, End: maxC.Index})
	return cursor.CCursor{Index: minC.Index, PreferNextRow: true}
}

// DeletePreviousChar removes the character immediately before c.
// No-op when the cursor is at the start of the buffer.
func DeletePreviousChar(b TextBuffer, c cursor.CCursor) cursor.CCursor {
	if c.Index == 0 {
		return c
	}
	return DeleteCCursorRange(b, c.Sub(1), c)
}

// DeleteNextChar removes the character immediately after c.
// No-op when the cursor is at the end of the buffer.
func DeleteNextChar(b TextBuffer, c cursor.CCursor) cursor.CCursor {
	if c.Index >= CharCount(b) {
		return c
	}
	return DeleteCCursorRange(b, c, c.Add(1))
}

// DeletePreviousWord removes the characters from the previous word
// boundary up to c.
func DeletePreviousWord(b TextBuffer, c cursor.CCursor) cursor.CCursor {
	minC := cursor.CCursor{
		Index:         boundary.PreviousWordBoundary(b.String(), c.Index),
		PreferNextRow: true,
	}
	return DeleteCCursorRange(b, minC, c)
}

// DeleteNextWord removes the characters from c up to the next word
// boundary.
func DeleteNextWord(b TextBuffer, c cursor.CCursor) cursor.CCursor {
	maxC := cursor.CCursor{
		Index:         boundary.NextWordBoundary(b.String(), c.Index),
		PreferNextRow: false,
	}
	return DeleteCCursorRange(b, c, maxC)
}

// ParagraphLayout resolves paragraph boundaries to cursors. It is the
// view this package needs of laid-out text; layout.Plain satisfies it
// for unshaped strings.
type ParagraphLayout interface {
	// ParagraphStart returns the cursor at the first character of the
	// given paragraph.
	ParagraphStart(paragraph int) cursor.Cursor

	// ParagraphEnd returns the cursor just past the last character of
	// the given paragraph, before its trailing line break.
	ParagraphEnd(paragraph int) cursor.Cursor
}

// DeleteParagraphBeforeCursor removes the text between the start of
// the selection's paragraph and the selection's end. When the
// selection already sits at the paragraph start it degrades to
// deleting the single previous character instead of a zero-length
// delete.
func DeleteParagraphBeforeCursor(b TextBuffer, lay ParagraphLayout, sel cursor.Selection) cursor.CCursor {
	minC, maxC := sel.Sorted()
	start := lay.ParagraphStart(minC.PCursor.Paragraph)
	if start.CCursor.Index == maxC.CCursor.Index {
		return DeletePreviousChar(b, start.CCursor)
	}
	return DeleteSelected(b, cursor.NewSelection(start, maxC))
}

// DeleteParagraphAfterCursor removes the text between the selection's
// start and the end of the selection's paragraph. When the selection
// already sits at the paragraph end it degrades to deleting the single
// next character.
func DeleteParagraphAfterCursor(b TextBuffer, lay ParagraphLayout, sel cursor.Selection) cursor.CCursor {
	minC, maxC := sel.Sorted()
	end := lay.ParagraphEnd(maxC.PCursor.Paragraph)
	if minC.CCursor.Index == end.CCursor.Index {
		return DeleteNextChar(b, minC.CCursor)
	}
	return DeleteSelected(b, cursor.NewSelection(minC, end))
}

// byteSpan converts a character range into byte offsets into s,
// enforcing the DeleteCharRange contract: a reversed range or one
// starting past the end of the content panics, an end past the last
// character clamps.
func byteSpan(s string, r Range) (start, end int) {
	if r.Start > r.End {
		panic(fmt.Sprintf("buffer: reversed char range %s", r))
	}
	if n := boundary.CharCount(s); r.Start > n {
		panic(fmt.Sprintf("buffer: char range %s starts past end of content (%d chars)", r, n))
	}
	return boundary.ByteIndexFromCharIndex(s, r.Start), boundary.ByteIndexFromCharIndex(s, r.End)
}
