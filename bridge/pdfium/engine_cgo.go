//go:build pdfium && cgo

package pdfium

/*
#cgo CFLAGS: -I${SRCDIR}/include
#cgo LDFLAGS: -lpdfium
#include <stdlib.h>
#include <fpdfview.h>
#include <fpdf_text.h>

static void pqdfium_init_library(void) {
	FPDF_LIBRARY_CONFIG config;
	config.version = 2;
	config.m_pUserFontPaths = NULL;
	config.m_pIsolate = NULL;
	config.m_v8EmbedderSlot = 0;
	FPDF_InitLibraryWithConfig(&config);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/wudi/pqdfium/bridge"
)

type engine struct {
	initialized bool
}

func newPlatformEngine() bridge.Engine {
	return &engine{}
}

func (e *engine) Init() error {
	if e.initialized {
		return nil
	}
	C.pqdfium_init_library()
	e.initialized = true
	return nil
}

func (e *engine) Destroy() {
	if !e.initialized {
		return
	}
	C.FPDF_DestroyLibrary()
	e.initialized = false
}

func (e *engine) OpenDocument(data []byte, password string) (bridge.Document, error) {
	if !e.initialized {
		return nil, errors.New("engine not initialized")
	}
	if len(data) == 0 {
		return nil, errors.New("empty document buffer")
	}

	// PDFium keeps reading from the buffer for the document's lifetime,
	// so the bytes are copied into C memory owned by the document handle.
	buf := C.CBytes(data)
	if buf == nil {
		return nil, errors.New("allocate document buffer")
	}

	var pw *C.char
	if password != "" {
		pw = C.CString(password)
		defer C.free(unsafe.Pointer(pw))
	}

	doc := C.FPDF_LoadMemDocument(buf, C.int(len(data)), pw)
	if doc == nil {
		C.free(buf)
		return nil, loadError(uint64(C.FPDF_GetLastError()))
	}
	return &document{doc: doc, buf: buf}, nil
}

type document struct {
	doc C.FPDF_DOCUMENT
	buf unsafe.Pointer
}

func (d *document) PageCount() int {
	if d.doc == nil {
		return 0
	}
	return int(C.FPDF_GetPageCount(d.doc))
}

func (d *document) Page(index int) (bridge.Page, error) {
	if d.doc == nil {
		return nil, errors.New("document closed")
	}
	if index < 0 || index >= d.PageCount() {
		return nil, fmt.Errorf("page index %d out of range", index)
	}
	p := C.FPDF_LoadPage(d.doc, C.int(index))
	if p == nil {
		return nil, fmt.Errorf("page %d failed to load", index)
	}
	return &page{page: p}, nil
}

func (d *document) Close() error {
	if d.doc != nil {
		C.FPDF_CloseDocument(d.doc)
		d.doc = nil
	}
	if d.buf != nil {
		C.free(d.buf)
		d.buf = nil
	}
	return nil
}

type page struct {
	page C.FPDF_PAGE
}

func (p *page) TextUTF16() ([]uint16, error) {
	if p.page == nil {
		return nil, errors.New("page closed")
	}
	tp := C.FPDFText_LoadPage(p.page)
	if tp == nil {
		return nil, errors.New("text layer failed to load")
	}
	defer C.FPDFText_ClosePage(tp)

	count := int(C.FPDFText_CountChars(tp))
	if count <= 0 {
		return nil, nil
	}

	buf := make([]C.ushort, count+1)
	written := int(C.FPDFText_GetText(tp, 0, C.int(count), &buf[0]))
	if written <= 1 {
		return nil, nil
	}

	// written includes the trailing NUL.
	units := make([]uint16, written-1)
	for i := range units {
		units[i] = uint16(buf[i])
	}
	return units, nil
}

func (p *page) Render(scale float64) (*image.NRGBA, error) {
	if p.page == nil {
		return nil, errors.New("page closed")
	}
	w, h, err := renderSize(float64(C.FPDF_GetPageWidth(p.page)), float64(C.FPDF_GetPageHeight(p.page)), scale)
	if err != nil {
		return nil, err
	}

	bm := C.FPDFBitmap_Create(C.int(w), C.int(h), 1)
	if bm == nil {
		return nil, errors.New("allocate render bitmap")
	}
	defer C.FPDFBitmap_Destroy(bm)

	C.FPDFBitmap_FillRect(bm, 0, 0, C.int(w), C.int(h), 0xFFFFFFFF)
	C.FPDF_RenderPageBitmap(bm, p.page, 0, 0, C.int(w), C.int(h), 0, 0)

	stride := int(C.FPDFBitmap_GetStride(bm))
	raw := C.GoBytes(unsafe.Pointer(C.FPDFBitmap_GetBuffer(bm)), C.int(stride*h))
	return bgraToNRGBA(raw, w, h, stride)
}

func (p *page) Close() error {
	if p.page != nil {
		C.FPDF_ClosePage(p.page)
		p.page = nil
	}
	return nil
}
