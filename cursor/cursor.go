package cursor

import "fmt"

// CCursor is a position in text measured in characters (Unicode code
// points), never bytes. PreferNextRow is a row-affinity hint used when
// the same character index is visually ambiguous, such as the boundary
// of a wrapped row; it does not participate in position comparisons.
// CCursor is an immutable value type.
type CCursor struct {
	Index         int
	PreferNextRow bool
}

// NewCCursor creates a character cursor at the given index.
// Negative indices clamp to 0.
func NewCCursor(index int) CCursor {
	if index < 0 {
		index = 0
	}
	return CCursor{Index: index}
}

// Add returns a cursor advanced by n characters. The row-affinity hint
// is preserved.
func (c CCursor) Add(n int) CCursor {
	c.Index += n
	if c.Index < 0 {
		c.Index = 0
	}
	return c
}

// Sub returns a cursor moved back by n characters, saturating at 0.
func (c CCursor) Sub(n int) CCursor {
	return c.Add(-n)
}

// String returns a human-readable representation of the cursor.
func (c CCursor) String() string {
	return fmt.Sprintf("CCursor(%d)", c.Index)
}

// PCursor is a paragraph-relative position: a paragraph number and a
// character offset within that paragraph. Paragraphs are delimited by
// hard line breaks, as opposed to visual (wrapped) rows.
type PCursor struct {
	Paragraph     int
	Offset        int
	PreferNextRow bool
}

// Cursor is a fully resolved position in laid-out text, carrying both
// the absolute character index and the paragraph-relative position for
// the same spot.
type Cursor struct {
	CCursor CCursor
	PCursor PCursor
}
