// Package boundary translates between the character indices editing
// code works with and the byte offsets UTF-8 storage requires, and
// locates word and line boundaries around a character index. All
// functions are pure and never produce a byte offset that splits a
// multi-byte character.
package boundary
