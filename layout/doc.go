// Package layout locates paragraph boundaries in plain text. It is
// the minimal paragraph geometry the buffer package's
// ParagraphLayout interface asks for, with no shaping or line
// wrapping.
package layout
