// Package bridge declares the contracts the native PDF backends satisfy.
// The entry points mirror the consumed surface of the wrapped libraries:
// document load from memory, page iteration, per-page text layer access,
// and a one-shot JSON export. Backends live in the subpackages pdfium and
// qpdf; tests substitute in-memory fakes.
package bridge

import "image"

// Engine is the native PDF rendering/parsing library behind the bridge.
// Implementations are not required to be safe for concurrent use; callers
// serialize access.
type Engine interface {
	// Init brings the native library up. Must be called once before
	// OpenDocument. Calling Init on an initialized engine is a no-op.
	Init() error

	// Destroy tears the native library down. Safe to call repeatedly.
	Destroy()

	// OpenDocument parses an in-memory PDF. The caller retains ownership
	// of data; implementations copy it if the native library needs the
	// buffer to outlive the call. password may be empty.
	OpenDocument(data []byte, password string) (Document, error)
}

// Document is an open native document handle.
type Document interface {
	// PageCount reports the number of pages.
	PageCount() int

	// Page loads the page at the given zero-based index.
	Page(index int) (Page, error)

	// Close releases the native document and any buffer copies backing it.
	Close() error
}

// Page is a loaded native page handle.
type Page interface {
	// TextUTF16 loads the page's text layer and returns its characters as
	// UTF-16 code units, without a trailing NUL. A page with no text layer
	// content returns an empty slice and no error. The text layer is
	// closed before TextUTF16 returns, on success and failure alike.
	TextUTF16() ([]uint16, error)

	// Close releases the native page.
	Close() error
}

// Renderer is implemented by pages that can rasterize themselves. scale is
// relative to the page's natural 72 DPI size. Optional: callers probe with
// a type assertion.
type Renderer interface {
	Render(scale float64) (*image.NRGBA, error)
}

// Transformer is the PDF-to-structured-data library behind the bridge. It
// exports a document's object graph as JSON at a selectable schema version.
type Transformer interface {
	// ToJSON converts an in-memory PDF to a JSON string. The native output
	// buffer is copied and released before ToJSON returns; the result is
	// an ordinary Go string.
	ToJSON(data []byte, version int) (string, error)
}
