//go:build (qpdf && !cgo) || (!qpdf && !linux && !darwin && !freebsd)

package qpdf

import "github.com/wudi/pqdfium/bridge"

type stubTransformer struct{}

func newPlatformTransformer() bridge.Transformer {
	return stubTransformer{}
}

func (stubTransformer) ToJSON(data []byte, version int) (string, error) {
	if err := validate(data, version); err != nil {
		return "", err
	}
	return "", ErrUnavailable
}
