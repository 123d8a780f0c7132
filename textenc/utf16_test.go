package textenc

import (
	"strings"
	"testing"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

func TestEncodeASCII(t *testing.T) {
	units := utf16.Encode([]rune("Hello World!"))
	got, replaced := Encode(units)
	if got != "Hello World!" {
		t.Fatalf("unexpected output: %q", got)
	}
	if replaced != 0 {
		t.Fatalf("unexpected replacements: %d", replaced)
	}
}

func TestEncodeRangeBoundaries(t *testing.T) {
	cases := []struct {
		name string
		in   rune
	}{
		{"last one-byte", 0x7F},
		{"first two-byte", 0x80},
		{"last two-byte", 0x7FF},
		{"first three-byte", 0x800},
		{"euro sign", '€'},
		{"cjk", '你'},
		{"last bmp", 0xFFFF},
	}
	for _, tc := range cases {
		got, replaced := Encode([]uint16{uint16(tc.in)})
		if replaced != 0 {
			t.Fatalf("%s: unexpected replacement", tc.name)
		}
		if got != string(tc.in) {
			t.Fatalf("%s: got %q want %q", tc.name, got, string(tc.in))
		}
	}
}

// Every non-surrogate BMP code point must match the stdlib encoding of the
// same rune, checked against the x/text UTF-16 decoder as a second oracle.
func TestEncodeBMPSweep(t *testing.T) {
	units := make([]uint16, 0, 0x10000-(surrMax-surrMin+1))
	for cp := rune(0); cp <= 0xFFFF; cp++ {
		if cp >= surrMin && cp <= surrMax {
			continue
		}
		units = append(units, uint16(cp))
	}

	got, replaced := Encode(units)
	if replaced != 0 {
		t.Fatalf("sweep contains no surrogates, got %d replacements", replaced)
	}

	want := string(utf16.Decode(units))
	if got != want {
		t.Fatal("encoded sweep diverges from stdlib utf16 decoding")
	}

	raw := make([]byte, 0, len(units)*2)
	for _, u := range units {
		raw = append(raw, byte(u>>8), byte(u))
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	oracle, err := dec.Bytes(raw)
	if err != nil {
		t.Fatalf("x/text decode: %v", err)
	}
	if got != string(oracle) {
		t.Fatal("encoded sweep diverges from x/text decoding")
	}
}

func TestEncodeSurrogatesReplaced(t *testing.T) {
	// "a" + unpaired high surrogate + low surrogate + "b"
	units := []uint16{'a', 0xD83D, 0xDE00, 'b'}
	got, replaced := Encode(units)
	if replaced != 2 {
		t.Fatalf("replaced = %d, want 2", replaced)
	}
	if got != "a��b" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestAppendAccumulates(t *testing.T) {
	var b strings.Builder
	if n := Append(&b, utf16.Encode([]rune("page one"))); n != 0 {
		t.Fatalf("unexpected replacements: %d", n)
	}
	b.WriteString("|")
	if n := Append(&b, utf16.Encode([]rune("page two"))); n != 0 {
		t.Fatalf("unexpected replacements: %d", n)
	}
	if b.String() != "page one|page two" {
		t.Fatalf("unexpected output: %q", b.String())
	}
}

func TestEncodeEmpty(t *testing.T) {
	got, replaced := Encode(nil)
	if got != "" || replaced != 0 {
		t.Fatalf("empty input should produce empty output, got %q (%d)", got, replaced)
	}
}
