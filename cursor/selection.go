package cursor

// Selection is a pair of cursors delimiting a range of text to act on.
// Anchor is where the selection started; Head is the current cursor
// position. When both sit on the same character index the selection is
// empty and represents a plain cursor. Selection is an immutable value
// type.
type Selection struct {
	Anchor Cursor
	Head   Cursor
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Cursor) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// CursorSelection creates an empty selection at c.
func CursorSelection(c Cursor) Selection {
	return Selection{Anchor: c, Head: c}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor.CCursor.Index == s.Head.CCursor.Index
}

// Sorted returns the selection's two cursors in (min, max) order by
// character index, regardless of the direction the selection was made
// in.
func (s Selection) Sorted() (minC, maxC Cursor) {
	if s.Anchor.CCursor.Index <= s.Head.CCursor.Index {
		return s.Anchor, s.Head
	}
	return s.Head, s.Anchor
}
