//go:build !pdfium && (linux || darwin || freebsd)

package pdfium

import (
	"errors"
	"fmt"
	"image"
	"os"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wudi/pqdfium/bridge"
)

// libNames are tried in order when PDFIUM_LIBRARY_PATH is unset.
var libNames = []string{"libpdfium.so", "libpdfium.so.1", "libpdfium.dylib"}

type engine struct {
	lib         uintptr
	initialized bool

	initLibrary    func()
	destroyLibrary func()
	loadMemDoc     func(data unsafe.Pointer, size int32, password unsafe.Pointer) uintptr
	lastError      func() uint64
	pageCount      func(doc uintptr) int32
	loadPage       func(doc uintptr, index int32) uintptr
	closePage      func(page uintptr)
	closeDoc       func(doc uintptr)
	textLoadPage   func(page uintptr) uintptr
	textClosePage  func(tp uintptr)
	textCountChars func(tp uintptr) int32
	textGetText    func(tp uintptr, start, count int32, result *uint16) int32
	pageWidth      func(page uintptr) float64
	pageHeight     func(page uintptr) float64
	bitmapCreate   func(w, h, alpha int32) uintptr
	bitmapFillRect func(bm uintptr, left, top, w, h int32, color uint64)
	renderPage     func(bm, page uintptr, startX, startY, sizeX, sizeY, rotate, flags int32)
	bitmapBuffer   func(bm uintptr) *byte
	bitmapStride   func(bm uintptr) int32
	bitmapDestroy  func(bm uintptr)
}

func newPlatformEngine() bridge.Engine {
	return &engine{}
}

func (e *engine) Init() error {
	if e.initialized {
		return nil
	}
	if e.lib == 0 {
		if err := e.open(); err != nil {
			return err
		}
	}
	e.initLibrary()
	e.initialized = true
	return nil
}

func (e *engine) open() error {
	names := libNames
	if path := os.Getenv("PDFIUM_LIBRARY_PATH"); path != "" {
		names = []string{path}
	}
	var lastErr error
	for _, name := range names {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		e.lib = lib
		e.register()
		return nil
	}
	return fmt.Errorf("load pdfium shared library: %w", lastErr)
}

func (e *engine) register() {
	purego.RegisterLibFunc(&e.initLibrary, e.lib, "FPDF_InitLibrary")
	purego.RegisterLibFunc(&e.destroyLibrary, e.lib, "FPDF_DestroyLibrary")
	purego.RegisterLibFunc(&e.loadMemDoc, e.lib, "FPDF_LoadMemDocument")
	purego.RegisterLibFunc(&e.lastError, e.lib, "FPDF_GetLastError")
	purego.RegisterLibFunc(&e.pageCount, e.lib, "FPDF_GetPageCount")
	purego.RegisterLibFunc(&e.loadPage, e.lib, "FPDF_LoadPage")
	purego.RegisterLibFunc(&e.closePage, e.lib, "FPDF_ClosePage")
	purego.RegisterLibFunc(&e.closeDoc, e.lib, "FPDF_CloseDocument")
	purego.RegisterLibFunc(&e.textLoadPage, e.lib, "FPDFText_LoadPage")
	purego.RegisterLibFunc(&e.textClosePage, e.lib, "FPDFText_ClosePage")
	purego.RegisterLibFunc(&e.textCountChars, e.lib, "FPDFText_CountChars")
	purego.RegisterLibFunc(&e.textGetText, e.lib, "FPDFText_GetText")
	purego.RegisterLibFunc(&e.pageWidth, e.lib, "FPDF_GetPageWidth")
	purego.RegisterLibFunc(&e.pageHeight, e.lib, "FPDF_GetPageHeight")
	purego.RegisterLibFunc(&e.bitmapCreate, e.lib, "FPDFBitmap_Create")
	purego.RegisterLibFunc(&e.bitmapFillRect, e.lib, "FPDFBitmap_FillRect")
	purego.RegisterLibFunc(&e.renderPage, e.lib, "FPDF_RenderPageBitmap")
	purego.RegisterLibFunc(&e.bitmapBuffer, e.lib, "FPDFBitmap_GetBuffer")
	purego.RegisterLibFunc(&e.bitmapStride, e.lib, "FPDFBitmap_GetStride")
	purego.RegisterLibFunc(&e.bitmapDestroy, e.lib, "FPDFBitmap_Destroy")
}

func (e *engine) Destroy() {
	if !e.initialized {
		return
	}
	e.destroyLibrary()
	e.initialized = false
}

func (e *engine) OpenDocument(data []byte, password string) (bridge.Document, error) {
	if !e.initialized {
		return nil, errors.New("engine not initialized")
	}
	if len(data) == 0 {
		return nil, errors.New("empty document buffer")
	}

	// PDFium keeps reading from the buffer for the document's lifetime.
	// The copy below is owned by the document handle and pinned by the
	// reference it holds; the caller's slice is never retained.
	buf := make([]byte, len(data))
	copy(buf, data)

	var pwPtr unsafe.Pointer
	var pw []byte
	if password != "" {
		pw = append([]byte(password), 0)
		pwPtr = unsafe.Pointer(&pw[0])
	}

	doc := e.loadMemDoc(unsafe.Pointer(&buf[0]), int32(len(buf)), pwPtr)
	runtime.KeepAlive(pw)
	if doc == 0 {
		return nil, loadError(e.lastError())
	}
	return &document{e: e, doc: doc, buf: buf}, nil
}

type document struct {
	e   *engine
	doc uintptr
	buf []byte
}

func (d *document) PageCount() int {
	if d.doc == 0 {
		return 0
	}
	return int(d.e.pageCount(d.doc))
}

func (d *document) Page(index int) (bridge.Page, error) {
	if d.doc == 0 {
		return nil, errors.New("document closed")
	}
	if index < 0 || index >= d.PageCount() {
		return nil, fmt.Errorf("page index %d out of range", index)
	}
	p := d.e.loadPage(d.doc, int32(index))
	if p == 0 {
		return nil, fmt.Errorf("page %d failed to load", index)
	}
	return &page{e: d.e, page: p}, nil
}

func (d *document) Close() error {
	if d.doc != 0 {
		d.e.closeDoc(d.doc)
		d.doc = 0
	}
	d.buf = nil
	return nil
}

type page struct {
	e    *engine
	page uintptr
}

func (p *page) TextUTF16() ([]uint16, error) {
	if p.page == 0 {
		return nil, errors.New("page closed")
	}
	tp := p.e.textLoadPage(p.page)
	if tp == 0 {
		return nil, errors.New("text layer failed to load")
	}
	defer p.e.textClosePage(tp)

	count := int(p.e.textCountChars(tp))
	if count <= 0 {
		return nil, nil
	}

	buf := make([]uint16, count+1)
	written := int(p.e.textGetText(tp, 0, int32(count), &buf[0]))
	if written <= 1 {
		return nil, nil
	}
	return buf[:written-1], nil
}

func (p *page) Render(scale float64) (*image.NRGBA, error) {
	if p.page == 0 {
		return nil, errors.New("page closed")
	}
	w, h, err := renderSize(p.e.pageWidth(p.page), p.e.pageHeight(p.page), scale)
	if err != nil {
		return nil, err
	}

	bm := p.e.bitmapCreate(int32(w), int32(h), 1)
	if bm == 0 {
		return nil, errors.New("allocate render bitmap")
	}
	defer p.e.bitmapDestroy(bm)

	p.e.bitmapFillRect(bm, 0, 0, int32(w), int32(h), 0xFFFFFFFF)
	p.e.renderPage(bm, p.page, 0, 0, int32(w), int32(h), 0, 0)

	stride := int(p.e.bitmapStride(bm))
	ptr := p.e.bitmapBuffer(bm)
	if ptr == nil || stride <= 0 {
		return nil, errors.New("render produced no buffer")
	}
	raw := make([]byte, stride*h)
	copy(raw, unsafe.Slice(ptr, stride*h))
	return bgraToNRGBA(raw, w, h, stride)
}

func (p *page) Close() error {
	if p.page != 0 {
		p.e.closePage(p.page)
		p.page = 0
	}
	return nil
}
