package pqdfium

import (
	"context"
	"image"
	"unicode/utf16"

	"github.com/wudi/pqdfium/bridge"
	"github.com/wudi/pqdfium/ocr"
)

func textUnits(s string) []uint16 { return utf16.Encode([]rune(s)) }

type pageSpec struct {
	units      []uint16
	loadErr    error
	textErr    error
	img        *image.NRGBA
	renderErr  error
	renderable bool
}

type fakeEngine struct {
	initErr  error
	inits    int
	destroys int
	openErr  error
	pages    []pageSpec
	password string
}

func (f *fakeEngine) Init() error {
	if f.initErr != nil {
		return f.initErr
	}
	f.inits++
	return nil
}

func (f *fakeEngine) Destroy() { f.destroys++ }

func (f *fakeEngine) OpenDocument(data []byte, password string) (bridge.Document, error) {
	f.password = password
	if f.openErr != nil {
		return nil, f.openErr
	}
	return &fakeDoc{pages: f.pages}, nil
}

type fakeDoc struct {
	pages  []pageSpec
	closed bool
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) Page(index int) (bridge.Page, error) {
	spec := d.pages[index]
	if spec.loadErr != nil {
		return nil, spec.loadErr
	}
	p := &fakePage{spec: spec}
	if spec.renderable {
		return &fakeRenderPage{fakePage: p}, nil
	}
	return p, nil
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

type fakePage struct {
	spec   pageSpec
	closed bool
}

func (p *fakePage) TextUTF16() ([]uint16, error) {
	if p.spec.textErr != nil {
		return nil, p.spec.textErr
	}
	return p.spec.units, nil
}

func (p *fakePage) Close() error {
	p.closed = true
	return nil
}

type fakeRenderPage struct {
	*fakePage
}

func (p *fakeRenderPage) Render(scale float64) (*image.NRGBA, error) {
	if p.spec.renderErr != nil {
		return nil, p.spec.renderErr
	}
	if p.spec.img != nil {
		return p.spec.img, nil
	}
	return image.NewNRGBA(image.Rect(0, 0, 8, 8)), nil
}

type fakeTransformer struct {
	out        string
	err        error
	gotVersion int
	gotData    []byte
}

func (t *fakeTransformer) ToJSON(data []byte, version int) (string, error) {
	t.gotData = append([]byte(nil), data...)
	t.gotVersion = version
	if t.err != nil {
		return "", t.err
	}
	return t.out, nil
}

type fakeOCR struct {
	text   string
	err    error
	inputs []ocr.Input
}

func (f *fakeOCR) Name() string { return "fake" }

func (f *fakeOCR) Recognize(_ context.Context, in ocr.Input) (ocr.Result, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return ocr.Result{}, f.err
	}
	return ocr.Result{InputID: in.ID, PlainText: f.text}, nil
}
