//go:build qpdf && cgo

package qpdf

/*
#cgo LDFLAGS: -lipdf_qpdf
#include <stdint.h>
#include <stddef.h>
#include <stdlib.h>

extern char* IPDF_QPDF_PDFToJSON(const uint8_t* data, size_t size, int version);
extern void IPDF_QPDF_FreeString(char* str);
*/
import "C"

import (
	"errors"

	"github.com/wudi/pqdfium/bridge"
)

type transformer struct{}

func newPlatformTransformer() bridge.Transformer {
	return transformer{}
}

func (transformer) ToJSON(data []byte, version int) (string, error) {
	if err := validate(data, version); err != nil {
		return "", err
	}

	buf := C.CBytes(data)
	if buf == nil {
		return "", errors.New("allocate document buffer")
	}
	defer C.free(buf)

	out := C.IPDF_QPDF_PDFToJSON((*C.uint8_t)(buf), C.size_t(len(data)), C.int(version))
	if out == nil {
		return "", errors.New("json export returned null")
	}
	defer C.IPDF_QPDF_FreeString(out)

	return C.GoString(out), nil
}
