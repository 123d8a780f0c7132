package pdfium

import (
	"errors"
	"image"
)

// maxRenderPixels bounds the bitmap a single page render may allocate.
const maxRenderPixels = 64 << 20

// renderSize converts a page's natural point size to pixel dimensions at
// the given scale, clamping to at least one pixel per axis.
func renderSize(widthPts, heightPts, scale float64) (int, int, error) {
	if widthPts <= 0 || heightPts <= 0 {
		return 0, 0, errors.New("page has no printable area")
	}
	if scale <= 0 {
		return 0, 0, errors.New("render scale must be positive")
	}
	w := int(widthPts*scale + 0.5)
	h := int(heightPts*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w*h > maxRenderPixels {
		return 0, 0, errors.New("render exceeds pixel budget")
	}
	return w, h, nil
}

// bgraToNRGBA repacks a native BGRA bitmap into an NRGBA image. stride is
// the native row length in bytes and may exceed width*4.
func bgraToNRGBA(raw []byte, width, height, stride int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || stride < width*4 {
		return nil, errors.New("invalid bitmap dimensions")
	}
	if len(raw) < stride*height {
		return nil, errors.New("bitmap buffer shorter than stride*height")
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := raw[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			dst[x*4+0] = src[x*4+2]
			dst[x*4+1] = src[x*4+1]
			dst[x*4+2] = src[x*4+0]
			dst[x*4+3] = src[x*4+3]
		}
	}
	return img, nil
}
