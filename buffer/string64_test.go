package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/textbuf/cursor"
)

func TestString64RoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"héllo wörld",
		"日本語のテキスト",
		strings.Repeat("a", 64),
		strings.Repeat("é", 32), // exactly 64 bytes
	}

	for _, want := range tests {
		s := String64FromString(want)
		if s.String() != want {
			t.Errorf("round trip of %q gave %q", want, s.String())
		}
		if s.Len() != len(want) {
			t.Errorf("Len() of %q = %d, want %d", want, s.Len(), len(want))
		}
	}
}

func TestString64TruncatesLongInput(t *testing.T) {
	s := String64FromString(strings.Repeat("a", 100))
	if s.Len() != 64 {
		t.Errorf("expected 64 bytes, got %d", s.Len())
	}
	if s.String() != strings.Repeat("a", 64) {
		t.Errorf("unexpected content %q", s.String())
	}
}

func TestString64TruncatesAtCharacterBoundary(t *testing.T) {
	// 22 three-byte characters are 66 bytes; a naive 64-byte cut would
	// split the 22nd character, so only 21 survive.
	in := strings.Repeat("日", 22)
	s := String64FromString(in)
	if s.Len() != 63 {
		t.Errorf("expected 63 bytes, got %d", s.Len())
	}
	if s.String() != strings.Repeat("日", 21) {
		t.Errorf("unexpected content %q", s.String())
	}
}

func TestString64CutsAtNUL(t *testing.T) {
	// NUL marks unused capacity, so content stops at the first one.
	s := String64FromString("abc\x00def")
	if s.String() != "abc" {
		t.Errorf("expected 'abc', got %q", s.String())
	}
}

func TestString64FromBytes(t *testing.T) {
	s, err := String64FromBytes([]byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.String() != "hello" {
		t.Errorf("expected 'hello', got %q", s.String())
	}

	// More than 64 bytes of valid input truncates without error.
	s, err = String64FromBytes([]byte(strings.Repeat("b", 80)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 64 {
		t.Errorf("expected 64 bytes, got %d", s.Len())
	}
}

func TestString64FromBytesInvalidUTF8(t *testing.T) {
	_, err := String64FromBytes([]byte{'a', 0xff, 'b'})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}

	// A 64-byte cut through a multi-byte character is an error here,
	// not a silent truncation.
	_, err = String64FromBytes([]byte(strings.Repeat("日", 22)))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8 for split character, got %v", err)
	}
}

func TestString64FromBytesEmbeddedNUL(t *testing.T) {
	_, err := String64FromBytes([]byte("ab\x00cd"))
	if !errors.Is(err, ErrEmbeddedNUL) {
		t.Errorf("expected ErrEmbeddedNUL, got %v", err)
	}

	// A trailing zero run is just unused capacity, not an error.
	if _, err := String64FromBytes([]byte("ab\x00\x00")); err != nil {
		t.Errorf("unexpected error for trailing zeros: %v", err)
	}
}

func TestString64Push(t *testing.T) {
	s := NewString64()
	s.Push("hello")
	s.Push(" world")
	if s.String() != "hello world" {
		t.Errorf("expected 'hello world', got %q", s.String())
	}
	if s.Len() != 11 {
		t.Errorf("expected length 11, got %d", s.Len())
	}
}

func TestString64PushOverflowIsNoop(t *testing.T) {
	s := String64FromString(strings.Repeat("x", 60))
	s.Push("abcde") // 65 bytes would not fit
	if s.Len() != 60 {
		t.Errorf("expected 60 bytes, got %d", s.Len())
	}

	s.Push("abcd") // exactly 64 fits
	if s.String() != strings.Repeat("x", 60)+"abcd" {
		t.Errorf("unexpected content %q", s.String())
	}
}

func TestString64Bytes(t *testing.T) {
	s := String64FromString("hé")
	if got := string(s.Bytes()); got != "hé" {
		t.Errorf("Bytes() = %q", got)
	}
	if len(s.Raw()) != String64Size {
		t.Errorf("Raw() length = %d, want %d", len(s.Raw()), String64Size)
	}
}

func TestString64Compare(t *testing.T) {
	a := String64FromString("apple")
	b := String64FromString("banana")

	if a.Compare(&b) >= 0 {
		t.Error("expected 'apple' < 'banana'")
	}
	if b.Compare(&a) <= 0 {
		t.Error("expected 'banana' > 'apple'")
	}
	a2 := String64FromString("apple")
	if a.Compare(&a2) != 0 || !a.Equal(&a2) {
		t.Error("expected equal buffers to compare as 0")
	}
}

func TestString64Numeric(t *testing.T) {
	n := String64FromString("-42")
	v, err := n.Int32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -42 {
		t.Errorf("Int32() = %d, want -42", v)
	}
	if got := n.MustInt32(); got != -42 {
		t.Errorf("MustInt32() = %d, want -42", got)
	}

	f := String64FromString("2.5")
	fv, err := f.Float32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fv != 2.5 {
		t.Errorf("Float32() = %v, want 2.5", fv)
	}

	bad := String64FromString("not a number")
	if _, err := bad.Int32(); err == nil {
		t.Error("expected parse error")
	}
	if _, err := bad.Float32(); err == nil {
		t.Error("expected parse error")
	}
}

func TestString64MustInt32Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unparsable content")
		}
	}()
	s := String64FromString("oops")
	s.MustInt32()
}

func TestString64InsertText(t *testing.T) {
	s := String64FromString("hello world")
	n := s.InsertText("big ", 6)
	if n != 4 {
		t.Errorf("expected 4 characters inserted, got %d", n)
	}
	if s.String() != "hello big world" {
		t.Errorf("expected 'hello big world', got %q", s.String())
	}
}

func TestString64InsertTextOverflow(t *testing.T) {
	// Inserting past capacity truncates the result at a UTF-8-safe
	// boundary and reports the net character growth.
	s := String64FromString(strings.Repeat("a", 62))
	n := s.InsertText("xyz", 62)
	if s.Len() != 64 {
		t.Errorf("expected a full buffer, got %d bytes", s.Len())
	}
	if s.String() != strings.Repeat("a", 62)+"xy" {
		t.Errorf("unexpected content %q", s.String())
	}
	if n != 2 {
		t.Errorf("expected 2 characters inserted, got %d", n)
	}

	full := String64FromString(strings.Repeat("a", 64))
	if n := full.InsertText("b", 64); n != 0 {
		t.Errorf("expected 0 characters inserted into a full buffer, got %d", n)
	}
}

func TestString64DeleteCharRange(t *testing.T) {
	s := String64FromString("café")
	s.DeleteCharRange(NewRange(1, 3))
	if s.String() != "cé" {
		t.Errorf("expected 'cé', got %q", s.String())
	}
}

func TestString64DerivedOps(t *testing.T) {
	s := String64FromString("hello world")

	c := DeletePreviousWord(&s, cursor.NewCCursor(11))
	if s.String() != "hello " || c.Index != 6 {
		t.Errorf("got %q cursor %d", s.String(), c.Index)
	}

	ReplaceWith(&s, "fresh")
	if s.String() != "fresh" {
		t.Errorf("expected 'fresh', got %q", s.String())
	}

	if got := Take(&s); got != "fresh" || s.Len() != 0 {
		t.Errorf("Take = %q, remaining %d bytes", got, s.Len())
	}
}

func TestString64InsertTextAtCapacityClamp(t *testing.T) {
	// A char limit equal to the capacity in characters keeps the
	// buffer within both limits.
	s := NewString64()
	c := cursor.NewCCursor(0)
	InsertTextAt(&s, &c, strings.Repeat("ab", 40), 10)
	if got := CharCount(&s); got != 10 {
		t.Errorf("expected 10 characters, got %d", got)
	}
	if c.Index != 10 {
		t.Errorf("expected cursor at 10, got %d", c.Index)
	}
}

func TestString64ZeroValue(t *testing.T) {
	var s String64
	if s.Len() != 0 || s.String() != "" {
		t.Errorf("zero value should be empty, got %q", s.String())
	}
}
