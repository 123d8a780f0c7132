package pqdfium

import (
	"context"
	"fmt"
	"image"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/wudi/pqdfium/bridge"
	"github.com/wudi/pqdfium/observability"
	"github.com/wudi/pqdfium/ocr"
	"github.com/wudi/pqdfium/textenc"
)

const defaultOCRDPI = 300

// maxOCRPixels caps the rendered page size handed to the OCR engine; larger
// renders are scaled down before encoding.
const maxOCRPixels = 16 << 20

// PageWarning records a page that contributed no text, or text with
// substituted characters, during extraction.
type PageWarning struct {
	// Page is the zero-based page index.
	Page int
	// Err describes the failure: page load, text layer load, or surrogate
	// code units replaced during re-encoding.
	Err error
}

// ExtractResult is the outcome of a text extraction.
type ExtractResult struct {
	// Text is the concatenation of every page's text, pages joined by
	// PageSeparator.
	Text string
	// Pages is the document's page count.
	Pages int
	// Warnings lists pages that failed to load or lost characters. A
	// non-empty Warnings does not make the extraction an error; failed
	// pages simply contribute no text.
	Warnings []PageWarning
}

// ExtractOption configures a single extraction call.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	password string
}

// WithPassword supplies the document open password.
func WithPassword(password string) ExtractOption {
	return func(c *extractConfig) { c.password = password }
}

// ExtractText pulls the text layer out of every page of the document and
// concatenates the pages with PageSeparator. The caller retains ownership
// of data. Pages that fail to load are skipped and reported in the result's
// Warnings; a document that fails to load returns an *ExtractionError.
func (l *Library) ExtractText(ctx context.Context, data []byte, opts ...ExtractOption) (ExtractResult, error) {
	var cfg extractConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) == 0 {
		return ExtractResult{}, ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ExtractResult{}, ErrClosed
	}

	ctx, span := l.tracer.StartSpan(ctx, "pqdfium.extract_text")
	defer span.Finish()

	doc, err := l.engine.OpenDocument(data, cfg.password)
	if err != nil {
		span.SetError(err)
		return ExtractResult{}, &ExtractionError{Reason: "document failed to load", Err: err}
	}
	defer doc.Close()

	res := ExtractResult{Pages: doc.PageCount()}
	span.SetTag(observability.MetricPageCount, res.Pages)

	var b strings.Builder
	for i := 0; i < res.Pages; i++ {
		if err := ctx.Err(); err != nil {
			span.SetError(err)
			return ExtractResult{}, err
		}
		if i > 0 {
			b.WriteString(PageSeparator)
		}
		if warn := l.extractPage(ctx, doc, i, &b); warn != nil {
			l.log.Warn("page skipped during extraction",
				observability.Int("page", i),
				observability.Error("error", warn))
			res.Warnings = append(res.Warnings, PageWarning{Page: i, Err: warn})
		}
	}

	res.Text = b.String()
	return res, nil
}

// ExtractTextString is ExtractText without the warning report.
func (l *Library) ExtractTextString(ctx context.Context, data []byte, opts ...ExtractOption) (string, error) {
	res, err := l.ExtractText(ctx, data, opts...)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// extractPage appends one page's text to b. A non-nil return means the
// page contributed no text or lost characters; extraction continues.
func (l *Library) extractPage(ctx context.Context, doc bridge.Document, index int, b *strings.Builder) error {
	page, err := doc.Page(index)
	if err != nil {
		return fmt.Errorf("load page: %w", err)
	}
	defer page.Close()

	units, err := page.TextUTF16()
	if err != nil {
		return fmt.Errorf("load text layer: %w", err)
	}

	if len(units) == 0 {
		if l.ocr != nil {
			return l.recognizePage(ctx, page, index, b)
		}
		return nil
	}

	if replaced := textenc.Append(b, units); replaced > 0 {
		return fmt.Errorf("%d code units outside the basic multilingual plane replaced with U+FFFD", replaced)
	}
	return nil
}

// recognizePage renders a text-layer-less page and runs the configured OCR
// engine over it.
func (l *Library) recognizePage(ctx context.Context, page bridge.Page, index int, b *strings.Builder) error {
	r, ok := page.(bridge.Renderer)
	if !ok {
		return nil
	}

	ctx, span := l.tracer.StartSpan(ctx, "pqdfium.ocr_page")
	defer span.Finish()

	img, err := r.Render(float64(l.ocrDPI) / 72)
	if err != nil {
		err = fmt.Errorf("render for ocr: %w", err)
		span.SetError(err)
		return err
	}

	in, err := ocr.InputFromImage(clampForOCR(img), index, ocr.ImageFormatPNG, ocr.WithDPI(l.ocrDPI))
	if err != nil {
		span.SetError(err)
		return err
	}
	res, err := l.ocr.Recognize(ctx, in)
	if err != nil {
		err = fmt.Errorf("ocr %s: %w", l.ocr.Name(), err)
		span.SetError(err)
		return err
	}
	b.WriteString(res.PlainText)
	return nil
}

// clampForOCR scales down renders that exceed maxOCRPixels, preserving the
// aspect ratio.
func clampForOCR(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels <= maxOCRPixels {
		return img
	}
	ratio := math.Sqrt(float64(maxOCRPixels) / float64(pixels))
	w := int(float64(bounds.Dx()) * ratio)
	h := int(float64(bounds.Dy()) * ratio)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
