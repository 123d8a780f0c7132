// Package pqdfium is a thin, safe wrapper around two pre-compiled native
// PDF libraries: the PDFium rendering/parsing engine and a QPDF-based
// JSON export shim. All substantive PDF work happens inside the wrapped
// libraries; this package owns input validation, page iteration, UTF-16
// to UTF-8 re-encoding, buffer ownership at the native boundary, and the
// initialization guard.
package pqdfium

import (
	"fmt"
	"sync"

	"github.com/wudi/pqdfium/bridge"
	"github.com/wudi/pqdfium/bridge/pdfium"
	"github.com/wudi/pqdfium/bridge/qpdf"
	"github.com/wudi/pqdfium/observability"
	"github.com/wudi/pqdfium/ocr"
)

// PageSeparator is inserted between consecutive pages' extracted text,
// never after the last page.
const PageSeparator = "\n---PAGE BREAK---\n"

// Library is an initialized handle on the native libraries. All methods
// are safe for concurrent use; native calls are serialized internally
// because PDFium itself is single-threaded.
type Library struct {
	mu     sync.Mutex
	engine bridge.Engine
	trans  bridge.Transformer
	log    observability.Logger
	tracer observability.Tracer
	ocr    ocr.Engine
	ocrDPI int
	closed bool
}

// Option configures a Library at construction time.
type Option func(*config)

type config struct {
	engine bridge.Engine
	trans  bridge.Transformer
	log    observability.Logger
	tracer observability.Tracer
	ocr    ocr.Engine
	ocrDPI int
}

// WithEngine substitutes the native PDF engine backend.
func WithEngine(e bridge.Engine) Option {
	return func(c *config) { c.engine = e }
}

// WithTransformer substitutes the JSON export backend.
func WithTransformer(t bridge.Transformer) Option {
	return func(c *config) { c.trans = t }
}

// WithLogger attaches a logger. Page-level extraction failures are logged
// at Warn in addition to being reported on the result.
func WithLogger(l observability.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithTracer attaches a tracer. Each operation runs under one span.
func WithTracer(t observability.Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// WithOCRFallback recognizes pages whose text layer is empty by rendering
// them and running the given OCR engine, when the backend supports
// rendering. dpi controls the render resolution; zero selects 300.
func WithOCRFallback(engine ocr.Engine, dpi int) Option {
	return func(c *config) {
		c.ocr = engine
		c.ocrDPI = dpi
	}
}

// New creates an independent library handle and initializes the native
// engine. Most callers want the process-wide Initialize instead; New
// exists for tests and for hosts that manage lifetimes explicitly.
func New(opts ...Option) (*Library, error) {
	cfg := config{
		log:    observability.NopLogger{},
		tracer: observability.NopTracer(),
		ocrDPI: defaultOCRDPI,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.engine == nil {
		cfg.engine = pdfium.New()
	}
	if cfg.trans == nil {
		cfg.trans = qpdf.New()
	}
	if cfg.ocrDPI <= 0 {
		cfg.ocrDPI = defaultOCRDPI
	}
	if err := cfg.engine.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitializationFailed, err)
	}
	return &Library{
		engine: cfg.engine,
		trans:  cfg.trans,
		log:    cfg.log,
		tracer: cfg.tracer,
		ocr:    cfg.ocr,
		ocrDPI: cfg.ocrDPI,
	}, nil
}

// Close tears down the native engine. Safe to call repeatedly; every
// operation after Close returns ErrClosed.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.engine.Destroy()
	l.closed = true
	return nil
}

var (
	defaultMu  sync.Mutex
	defaultLib *Library
)

// Initialize returns the process-wide library, creating it on first call.
// Subsequent calls are no-ops returning the same handle. After Cleanup,
// the next Initialize builds a fresh library.
func Initialize(opts ...Option) (*Library, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLib != nil && !defaultLib.isClosed() {
		return defaultLib, nil
	}
	lib, err := New(opts...)
	if err != nil {
		return nil, err
	}
	defaultLib = lib
	return lib, nil
}

// Cleanup closes the process-wide library. Safe to call repeatedly, and
// safe to call without a prior Initialize.
func Cleanup() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLib != nil {
		defaultLib.Close()
		defaultLib = nil
	}
}

func (l *Library) isClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}
