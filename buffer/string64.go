package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dshills/textbuf/boundary"
)

// String64Size is the storage capacity of a String64 in bytes.
const String64Size = 64

// Errors returned by the strict String64 constructors.
var (
	// ErrInvalidUTF8 reports bytes that do not decode as UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrEmbeddedNUL reports content containing a NUL byte, which
	// String64 reserves as its unused-capacity sentinel.
	ErrEmbeddedNUL = errors.New("embedded NUL byte")
)

// String64 is a fixed-capacity text buffer: up to 64 bytes of UTF-8
// stored inline, with the unused tail zero-filled. It is a plain value
// type with no heap allocation, cheap to copy and suitable for
// embedding in larger records.
//
// Invariant: the stored bytes with their trailing zero run stripped
// are always a valid UTF-8 string, and no zero byte ever appears
// before later content. The first zero byte therefore marks the end of
// the content, which is why content itself can never contain NUL.
type String64 struct {
	inner [String64Size]byte
}

// NewString64 returns an empty String64.
func NewString64() String64 {
	return String64{}
}

// String64FromString copies up to 64 bytes of s. Longer input is cut
// at the largest prefix of at most 64 bytes that is still valid UTF-8,
// so a multi-byte character is never stored partially. Content is also
// cut at the first NUL byte or invalid UTF-8 sequence. The truncation
// is deliberately lossy and silent; use String64FromBytes to validate
// instead.
func String64FromString(s string) String64 {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	n := len(s)
	if n > String64Size {
		n = String64Size
	}
	for n > 0 && !utf8.ValidString(s[:n]) {
		n--
	}
	var out String64
	copy(out.inner[:], s[:n])
	return out
}

// String64FromBytes is the strict counterpart of String64FromString:
// it fails with ErrInvalidUTF8 instead of truncating when the copied
// bytes do not decode, and with ErrEmbeddedNUL when a zero byte
// appears before later content. At most 64 bytes of b are used.
func String64FromBytes(b []byte) (String64, error) {
	n := len(b)
	if n > String64Size {
		n = String64Size
	}
	var out String64
	copy(out.inner[:], b[:n])
	if !utf8.Valid(out.inner[:]) {
		return String64{}, fmt.Errorf("string64: %w: % x", ErrInvalidUTF8, b[:n])
	}
	if i := bytes.IndexByte(out.inner[:], 0); i >= 0 {
		for _, rest := range out.inner[i:] {
			if rest != 0 {
				return String64{}, fmt.Errorf("string64: %w at offset %d", ErrEmbeddedNUL, i)
			}
		}
	}
	return out, nil
}

// Len returns the content length in bytes: the run of non-zero bytes
// before the first zero byte.
func (s *String64) Len() int {
	for i, b := range s.inner {
		if b == 0 {
			return i
		}
	}
	return String64Size
}

// String returns the content. String64 guarantees its content is valid
// UTF-8; if the stored bytes ever fail to decode the state has been
// corrupted, and String panics with the raw bytes rather than carry
// on.
func (s *String64) String() string {
	b := s.inner[:s.Len()]
	if !utf8.Valid(b) {
		panic(fmt.Sprintf("string64: corrupt state, content is not valid UTF-8: % x", s.inner))
	}
	return string(b)
}

// Bytes returns the content bytes, without the zero-filled tail.
// The slice aliases the buffer's storage.
func (s *String64) Bytes() []byte {
	return s.inner[:s.Len()]
}

// Raw returns all 64 bytes of storage, including the zero-filled
// tail. The slice aliases the buffer's storage.
func (s *String64) Raw() []byte {
	return s.inner[:]
}

// Push appends t after the current content. When the result would not
// fit in 64 bytes the call is a silent no-op; callers that need to
// detect that must check Len beforehand. Input that is not valid UTF-8
// is also dropped, and input is cut at its first NUL byte, keeping the
// content invariant intact.
func (s *String64) Push(t string) {
	if i := strings.IndexByte(t, 0); i >= 0 {
		t = t[:i]
	}
	if !utf8.ValidString(t) {
		return
	}
	n := s.Len()
	if n+len(t) > String64Size {
		return
	}
	copy(s.inner[n:], t)
}

// Compare orders two buffers lexicographically by their decoded
// content. For valid UTF-8 this coincides with byte-wise order.
func (s *String64) Compare(other *String64) int {
	return strings.Compare(s.String(), other.String())
}

// Equal reports whether two buffers hold the same content.
func (s *String64) Equal(other *String64) bool {
	return s.inner == other.inner
}

// Int32 parses the content as a base-10 32-bit integer.
func (s *String64) Int32() (int32, error) {
	v, err := strconv.ParseInt(s.String(), 10, 32)
	return int32(v), err
}

// Float32 parses the content as a 32-bit float.
func (s *String64) Float32() (float32, error) {
	v, err := strconv.ParseFloat(s.String(), 32)
	return float32(v), err
}

// MustInt32 is Int32 for content already known to hold a number; it
// panics on parse failure.
func (s *String64) MustInt32() int32 {
	v, err := s.Int32()
	if err != nil {
		panic(err)
	}
	return v
}

// MustFloat32 is Float32 for content already known to hold a number;
// it panics on parse failure.
func (s *String64) MustFloat32() float32 {
	v, err := s.Float32()
	if err != nil {
		panic(err)
	}
	return v
}

// IsMutable always returns true.
func (s *String64) IsMutable() bool { return true }

// InsertText splices text in before the character at charIndex,
// re-encoding through String64FromString. An edit that would overflow
// 64 bytes silently truncates the result. The return value is the net
// character growth of the buffer, so a clamped insert reports fewer
// characters than text holds.
func (s *String64) InsertText(text string, charIndex int) int {
	t := s.String()
	before := boundary.CharCount(t)
	bi := boundary.ByteIndexFromCharIndex(t, charIndex)
	*s = String64FromString(t[:bi] + text + t[bi:])
	inserted := boundary.CharCount(s.String()) - before
	if inserted < 0 {
		inserted = 0
	}
	return inserted
}

// DeleteCharRange removes the characters in [r.Start, r.End).
func (s *String64) DeleteCharRange(r Range) {
	t := s.String()
	bs, be := byteSpan(t, r)
	*s = String64FromString(t[:bs] + t[be:])
}

// Clear empties the buffer.
func (s *String64) Clear() {
	*s = String64{}
}

// ReplaceWith swaps in new contents, truncating to capacity.
func (s *String64) ReplaceWith(text string) {
	*s = String64FromString(text)
}
