//go:build !qpdf && (linux || darwin || freebsd)

package qpdf

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wudi/pqdfium/bridge"
)

// libNames are tried in order when IPDF_QPDF_LIBRARY_PATH is unset.
var libNames = []string{"libipdf_qpdf.so", "libipdf_qpdf.so.1", "libipdf_qpdf.dylib"}

type transformer struct {
	once sync.Once
	err  error

	pdfToJSON  func(data unsafe.Pointer, size uint64, version int32) *byte
	freeString func(str *byte)
}

func newPlatformTransformer() bridge.Transformer {
	return &transformer{}
}

func (t *transformer) open() {
	names := libNames
	if path := os.Getenv("IPDF_QPDF_LIBRARY_PATH"); path != "" {
		names = []string{path}
	}
	var lastErr error
	for _, name := range names {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		purego.RegisterLibFunc(&t.pdfToJSON, lib, "IPDF_QPDF_PDFToJSON")
		purego.RegisterLibFunc(&t.freeString, lib, "IPDF_QPDF_FreeString")
		return
	}
	t.err = fmt.Errorf("load qpdf shim shared library: %w", lastErr)
}

func (t *transformer) ToJSON(data []byte, version int) (string, error) {
	if err := validate(data, version); err != nil {
		return "", err
	}
	t.once.Do(t.open)
	if t.err != nil {
		return "", t.err
	}

	out := t.pdfToJSON(unsafe.Pointer(&data[0]), uint64(len(data)), int32(version))
	runtime.KeepAlive(data)
	if out == nil {
		return "", errors.New("json export returned null")
	}
	// Copy out of the library's allocation, then release it with the
	// library's own free to keep allocator domains matched.
	result := goString(out)
	t.freeString(out)
	return result, nil
}

// goString copies a NUL-terminated C string into a Go string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
