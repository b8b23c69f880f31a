package buffer

// Cow is a copy-on-write text buffer. It reads from a shared backing
// string until the first mutation, at which point it switches to a
// private copy and never touches the backing string again. Useful when
// many buffers start from the same large contents and most are never
// edited.
type Cow struct {
	shared string
	owned  String
	mut    bool
}

// NewCow creates a buffer that borrows s until first mutation.
func NewCow(s string) *Cow {
	return &Cow{shared: s}
}

// IsMutable always returns true.
func (c *Cow) IsMutable() bool { return true }

// String returns the current contents.
func (c *Cow) String() string {
	if c.mut {
		return c.owned.String()
	}
	return c.shared
}

// IsOwned reports whether the buffer has detached from its backing
// string.
func (c *Cow) IsOwned() bool { return c.mut }

// toMut detaches from the backing string.
func (c *Cow) toMut() *String {
	if !c.mut {
		c.owned = String(c.shared)
		c.shared = ""
		c.mut = true
	}
	return &c.owned
}

// InsertText splices text in before the character at charIndex and
// returns the number of characters inserted.
func (c *Cow) InsertText(text string, charIndex int) int {
	return c.toMut().InsertText(text, charIndex)
}

// DeleteCharRange removes the characters in [r.Start, r.End).
func (c *Cow) DeleteCharRange(r Range) {
	c.toMut().DeleteCharRange(r)
}

// Clear empties the buffer.
func (c *Cow) Clear() {
	c.toMut().Clear()
}

// ReplaceWith swaps in new contents.
func (c *Cow) ReplaceWith(text string) {
	c.toMut().ReplaceWith(text)
}

// Take returns the contents and empties the buffer.
func (c *Cow) Take() string {
	out := c.String()
	c.shared = ""
	c.owned = ""
	c.mut = true
	return out
}
