package pdfium

import (
	"strings"
	"testing"
)

func TestLoadError(t *testing.T) {
	cases := []struct {
		code uint64
		want string
	}{
		{errFormat, "not a PDF"},
		{errPassword, "password"},
		{errSecurity, "security"},
		{errPage, "page"},
		{errFile, "opened"},
		{errSuccess, "failed to load"},
		{errUnknown, "failed to load"},
		{42, "code 42"},
	}
	for _, tc := range cases {
		err := loadError(tc.code)
		if err == nil {
			t.Fatalf("code %d: expected error", tc.code)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("code %d: %q does not mention %q", tc.code, err, tc.want)
		}
	}
}

func TestRenderSize(t *testing.T) {
	w, h, err := renderSize(612, 792, 300.0/72)
	if err != nil {
		t.Fatalf("renderSize error: %v", err)
	}
	if w != 2550 || h != 3300 {
		t.Fatalf("US letter at 300dpi: got %dx%d, want 2550x3300", w, h)
	}

	if _, _, err := renderSize(0, 792, 1); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, _, err := renderSize(612, 792, 0); err == nil {
		t.Fatal("expected error for zero scale")
	}
	if _, _, err := renderSize(1e6, 1e6, 100); err == nil {
		t.Fatal("expected error for oversized render")
	}

	// Tiny pages clamp to one pixel instead of rounding to zero.
	w, h, err = renderSize(0.1, 0.1, 1)
	if err != nil {
		t.Fatalf("renderSize error: %v", err)
	}
	if w != 1 || h != 1 {
		t.Fatalf("tiny page: got %dx%d, want 1x1", w, h)
	}
}

func TestBGRAToNRGBA(t *testing.T) {
	// 2x1 bitmap with 12-byte stride (4 bytes padding): blue then opaque red.
	raw := []byte{
		0xFF, 0x00, 0x00, 0xFF, // BGRA blue
		0x00, 0x00, 0xFF, 0xFF, // BGRA red
		0x00, 0x00, 0x00, 0x00, // padding
	}
	img, err := bgraToNRGBA(raw, 2, 1, 12)
	if err != nil {
		t.Fatalf("bgraToNRGBA error: %v", err)
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0xFFFF || a != 0xFFFF {
		t.Fatalf("pixel 0 not blue: %v %v %v %v", r, g, b, a)
	}
	r, g, b, a = img.At(1, 0).RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Fatalf("pixel 1 not red: %v %v %v %v", r, g, b, a)
	}

	if _, err := bgraToNRGBA(raw[:4], 2, 1, 12); err == nil {
		t.Fatal("expected error for short buffer")
	}
	if _, err := bgraToNRGBA(raw, 4, 1, 12); err == nil {
		t.Fatal("expected error for stride narrower than row")
	}
}
