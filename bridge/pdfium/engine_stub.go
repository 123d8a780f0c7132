//go:build (pdfium && !cgo) || (!pdfium && !linux && !darwin && !freebsd)

package pdfium

import "github.com/wudi/pqdfium/bridge"

type stubEngine struct{}

func newPlatformEngine() bridge.Engine {
	return stubEngine{}
}

func (stubEngine) Init() error { return ErrUnavailable }

func (stubEngine) Destroy() {}

func (stubEngine) OpenDocument([]byte, string) (bridge.Document, error) {
	return nil, ErrUnavailable
}
