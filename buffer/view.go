package buffer

// View is an immutable window onto a string. All mutating operations
// are no-ops; InsertText reports zero characters inserted so callers
// can detect that nothing happened.
type View string

// IsMutable always returns false.
func (View) IsMutable() bool { return false }

// String returns the viewed contents.
func (v View) String() string { return string(v) }

// InsertText does nothing and returns 0.
func (View) InsertText(string, int) int { return 0 }

// DeleteCharRange does nothing.
func (View) DeleteCharRange(Range) {}
