// Package qpdf backs the bridge.Transformer contract with the IPDF/QPDF
// integration library, whose single entry point converts an in-memory PDF
// to a JSON string at a selectable schema version. Strings allocated by
// the library are released with its own IPDF_QPDF_FreeString, never a
// foreign deallocator. A cgo binding is selected with the "qpdf" build
// tag; unix-like builds otherwise dlopen the shared library at runtime.
package qpdf

import (
	"errors"
	"fmt"

	"github.com/wudi/pqdfium/bridge"
)

// ErrUnavailable reports that no QPDF binding exists in this build.
var ErrUnavailable = errors.New("qpdf backend unavailable in this build")

// New returns the JSON transformer for this platform and build
// configuration.
func New() bridge.Transformer {
	return newPlatformTransformer()
}

func validate(data []byte, version int) error {
	if len(data) == 0 {
		return errors.New("empty document buffer")
	}
	if version < 1 || version > 2 {
		return fmt.Errorf("unsupported json schema version %d", version)
	}
	return nil
}
