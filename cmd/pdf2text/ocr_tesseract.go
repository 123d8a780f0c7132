//go:build ocr

package main

import (
	"context"
	"strings"

	"github.com/wudi/pqdfium/ocr"
	"github.com/wudi/pqdfium/ocr/tesseract"
)

// langEngine injects language hints into every input before delegating.
type langEngine struct {
	engine ocr.Engine
	langs  []string
}

func (e langEngine) Name() string { return e.engine.Name() }

func (e langEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	ocr.Apply(&in, ocr.WithLanguages(e.langs...))
	return e.engine.Recognize(ctx, in)
}

func ocrEngine(langs string) (ocr.Engine, error) {
	hints := strings.Split(langs, ",")
	for i := range hints {
		hints[i] = strings.TrimSpace(hints[i])
	}
	return langEngine{engine: tesseract.New(), langs: hints}, nil
}
