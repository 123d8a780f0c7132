package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/tiff"
)

// InputFromImage encodes a rendered page image into an OCR input. The
// generated ID is stable for the page index to simplify correlation with
// downstream results. TIFF output uses deflate compression, which keeps
// large renders manageable for engines that prefer TIFF.
func InputFromImage(img image.Image, pageIndex int, format ImageFormat, opts ...InputOption) (Input, error) {
	var buf bytes.Buffer
	switch format {
	case ImageFormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return Input{}, fmt.Errorf("encode page render: %w", err)
		}
	case ImageFormatTIFF:
		if err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return Input{}, fmt.Errorf("encode page render: %w", err)
		}
	default:
		return Input{}, fmt.Errorf("unsupported OCR image format %q", format)
	}
	in := Input{
		ID:        fmt.Sprintf("page-%d", pageIndex),
		Image:     buf.Bytes(),
		Format:    format,
		PageIndex: pageIndex,
	}
	Apply(&in, opts...)
	return in, nil
}
