package layout

import (
	"sort"

	"github.com/dshills/textbuf/cursor"
)

// Plain maps character indices to paragraphs for unshaped text, where
// a paragraph is a run of characters delimited by hard '\n' breaks.
// It answers the paragraph-boundary queries editing operations need
// without any notion of wrapping, shaping, or visual rows.
//
// A Plain is a snapshot: rebuild it after the text changes.
type Plain struct {
	// starts[i] is the char index of the first character of paragraph
	// i; ends[i] is the char index just past its last character,
	// excluding the trailing '\n'. Text with n newlines has n+1
	// paragraphs, so both slices are never empty.
	starts []int
	ends   []int
}

// NewPlain indexes the paragraphs of text.
func NewPlain(text string) *Plain {
	p := &Plain{starts: []int{0}}
	ci := 0
	for _, r := range text {
		if r == '\n' {
			p.ends = append(p.ends, ci)
			p.starts = append(p.starts, ci+1)
		}
		ci++
	}
	p.ends = append(p.ends, ci)
	return p
}

// ParagraphCount returns the number of paragraphs. Empty text has one
// empty paragraph.
func (p *Plain) ParagraphCount() int {
	return len(p.starts)
}

// ParagraphStart returns the cursor at the first character of
// paragraph i, clamped to the existing paragraphs. The cursor prefers
// the next visual row, as a start-of-paragraph position does.
func (p *Plain) ParagraphStart(i int) cursor.Cursor {
	i = p.clamp(i)
	return cursor.Cursor{
		CCursor: cursor.CCursor{Index: p.starts[i], PreferNextRow: true},
		PCursor: cursor.PCursor{Paragraph: i, PreferNextRow: true},
	}
}

// ParagraphEnd returns the cursor just past the last character of
// paragraph i, before its trailing line break, clamped to the existing
// paragraphs.
func (p *Plain) ParagraphEnd(i int) cursor.Cursor {
	i = p.clamp(i)
	return cursor.Cursor{
		CCursor: cursor.CCursor{Index: p.ends[i]},
		PCursor: cursor.PCursor{Paragraph: i, Offset: p.ends[i] - p.starts[i]},
	}
}

// CursorAt resolves a character index to a full cursor carrying its
// paragraph-relative position. An index on a '\n' belongs to the
// paragraph the newline terminates.
func (p *Plain) CursorAt(charIndex int) cursor.Cursor {
	if charIndex < 0 {
		charIndex = 0
	}
	i := sort.Search(len(p.starts), func(i int) bool {
		return p.starts[i] > charIndex
	}) - 1
	return cursor.Cursor{
		CCursor: cursor.CCursor{Index: charIndex},
		PCursor: cursor.PCursor{Paragraph: i, Offset: charIndex - p.starts[i]},
	}
}

func (p *Plain) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(p.starts) {
		return len(p.starts) - 1
	}
	return i
}
