package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"golang.org/x/image/tiff"
)

func testImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}

func TestInputFromImagePNG(t *testing.T) {
	in, err := InputFromImage(testImage(), 3, ImageFormatPNG, WithLanguages("eng"))
	if err != nil {
		t.Fatalf("InputFromImage() error = %v", err)
	}
	if in.ID != "page-3" || in.PageIndex != 3 {
		t.Fatalf("unexpected identity: %q page %d", in.ID, in.PageIndex)
	}
	if in.Format != ImageFormatPNG {
		t.Fatalf("unexpected format: %q", in.Format)
	}
	if _, err := png.Decode(bytes.NewReader(in.Image)); err != nil {
		t.Fatalf("payload is not decodable png: %v", err)
	}
	if len(in.Languages) != 1 || in.Languages[0] != "eng" {
		t.Fatalf("language hint lost: %v", in.Languages)
	}
}

func TestInputFromImageTIFF(t *testing.T) {
	in, err := InputFromImage(testImage(), 0, ImageFormatTIFF)
	if err != nil {
		t.Fatalf("InputFromImage() error = %v", err)
	}
	if _, err := tiff.Decode(bytes.NewReader(in.Image)); err != nil {
		t.Fatalf("payload is not decodable tiff: %v", err)
	}
}

func TestInputFromImageUnknownFormat(t *testing.T) {
	if _, err := InputFromImage(testImage(), 0, ImageFormat("image/bmp")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
