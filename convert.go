package pqdfium

import (
	"context"

	"github.com/wudi/pqdfium/observability"
)

// JSON schema versions understood by the transformation library.
const (
	// JSONVersionLegacy is the original compact schema.
	JSONVersionLegacy = 1
	// JSONVersionFull is the verbose schema carrying the complete object
	// graph. It is the default.
	JSONVersionFull = 2
)

// ConvertOption configures a single conversion call.
type ConvertOption func(*convertConfig)

type convertConfig struct {
	version int
}

// WithJSONVersion selects the transformation library's schema version.
func WithJSONVersion(version int) ConvertOption {
	return func(c *convertConfig) { c.version = version }
}

// PDFToJSON exports the document's object graph as a JSON string. The call
// delegates wholesale to the transformation library; the bridge does not
// parse or validate the returned JSON. The caller retains ownership of
// data; the result is an ordinary Go string with no release obligation.
func (l *Library) PDFToJSON(ctx context.Context, data []byte, opts ...ConvertOption) (string, error) {
	cfg := convertConfig{version: JSONVersionFull}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) == 0 {
		return "", ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return "", ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	_, span := l.tracer.StartSpan(ctx, "pqdfium.pdf_to_json")
	defer span.Finish()
	span.SetTag("json.version", cfg.version)

	out, err := l.trans.ToJSON(data, cfg.version)
	if err != nil {
		span.SetError(err)
		return "", &ConversionError{Reason: "json export failed", Err: err}
	}
	l.log.Debug("pdf converted to json",
		observability.Int("version", cfg.version),
		observability.Int("bytes", len(out)))
	return out, nil
}
