//go:build !ocr

package main

import (
	"errors"

	"github.com/wudi/pqdfium/ocr"
)

func ocrEngine(string) (ocr.Engine, error) {
	return nil, errors.New("ocr support not compiled in; rebuild with -tags ocr")
}
