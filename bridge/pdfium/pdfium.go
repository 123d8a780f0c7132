// Package pdfium backs the bridge.Engine contract with the pre-compiled
// PDFium library. Two bindings exist: a cgo binding selected with the
// "pdfium" build tag (links against libpdfium at build time), and a
// purego binding used otherwise on unix-like platforms (dlopens the
// shared library at runtime). Platforms with neither get a stub that
// fails initialization cleanly.
package pdfium

import (
	"errors"
	"fmt"

	"github.com/wudi/pqdfium/bridge"
)

// ErrUnavailable reports that no PDFium binding exists in this build.
var ErrUnavailable = errors.New("pdfium backend unavailable in this build")

// New returns the PDFium engine for this platform and build configuration.
// The engine is inert until Init is called.
func New() bridge.Engine {
	return newPlatformEngine()
}

// Document load error codes, as reported by FPDF_GetLastError.
const (
	errSuccess  = 0
	errUnknown  = 1
	errFile     = 2
	errFormat   = 3
	errPassword = 4
	errSecurity = 5
	errPage     = 6
)

// loadError translates a native document load error code.
func loadError(code uint64) error {
	switch code {
	case errFile:
		return errors.New("file cannot be opened")
	case errFormat:
		return errors.New("data is not a PDF or is corrupted")
	case errPassword:
		return errors.New("password required or incorrect")
	case errSecurity:
		return errors.New("unsupported security scheme")
	case errPage:
		return errors.New("page not found or content error")
	case errSuccess, errUnknown:
		return errors.New("document failed to load")
	default:
		return fmt.Errorf("document failed to load (code %d)", code)
	}
}
