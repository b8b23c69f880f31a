// Package buffer provides an editable text-buffer contract and the
// editing operations interactive widgets are built from.
//
// The contract is the TextBuffer interface: four primitives each
// storage variant supplies (mutability flag, contents, insert at a
// character index, delete a character range). Every other operation is
// a package-level function derived from those primitives, so all
// variants get the full editing vocabulary for free:
//
//   - Clear, ReplaceWith, Take
//   - InsertTextAt (with an optional character limit)
//   - DecreaseIndentation
//   - DeleteSelected, DeletePreviousChar, DeleteNextChar
//   - DeletePreviousWord, DeleteNextWord
//   - DeleteParagraphBeforeCursor, DeleteParagraphAfterCursor
//
// All positions and ranges are character indices (Unicode code
// points); translation to byte offsets happens inside the variants via
// package boundary and never splits a multi-byte character.
//
// Variants:
//
//   - String: growable string storage, the common case
//   - Cow: copy-on-write over a shared backing string
//   - View: an immutable window, edits are no-ops
//   - String64: 64 bytes of inline fixed-capacity storage
//
// Basic usage:
//
//	var s buffer.String
//	c := cursor.NewCCursor(0)
//	buffer.InsertTextAt(&s, &c, "hello world", buffer.NoCharLimit)
//	c = buffer.DeletePreviousWord(&s, c)
//	// s == "hello ", c.Index == 6
//
// A variant can override the derived Clear, ReplaceWith, and Take by
// implementing the Clearer, Replacer, and Taker interfaces; the
// derived functions pick the override up automatically.
//
// Error model:
//
// Reversed ranges and ranges starting past the end of the content are
// caller bugs and panic. Capacity overflow in String64 and
// character-limited insertion clamp silently, with the applied
// character count reported through InsertText's return value. Parse
// failures from String64's numeric accessors are ordinary errors;
// the Must variants panic instead.
//
// The package is not synchronized: a buffer must not be mutated
// concurrently with any other access, matching ordinary Go ownership
// of a value being edited.
package buffer
