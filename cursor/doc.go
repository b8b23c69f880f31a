// Package cursor provides the position types used by text editing
// operations.
//
// Positions are always measured in characters (Unicode code points),
// never bytes:
//
//   - CCursor: an absolute character index plus a row-affinity hint
//   - PCursor: a paragraph number and an offset within that paragraph
//   - Cursor: both of the above resolved for the same position
//   - Selection: an anchor/head pair delimiting a range to act on
//
// All types are immutable values; methods like Add and Sub return new
// cursors and saturate at index 0. The PreferNextRow hint is carried
// along but never takes part in comparisons: two cursors at the same
// character index are the same position.
package cursor
