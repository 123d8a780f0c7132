// Command pqdfium-c builds the C ABI surface for embedding hosts,
// including the WebAssembly loader. Build with -buildmode=c-shared (or
// c-archive) to produce a library exposing:
//
//	pqdfium_initialize()      -> 1 on success, 0 on failure
//	pqdfium_extract_text(p,n) -> malloc'd NUL-terminated UTF-8, or NULL
//	pqdfium_pdf_to_json(p,n)  -> malloc'd NUL-terminated JSON, or NULL
//	pqdfium_free_string(p)    -> releases a returned string, exactly once
//	pqdfium_cleanup()
//
// Every string handed out crosses exactly one allocator boundary
// (C.CString here); pqdfium_free_string is the matching release for both
// return paths.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"unsafe"

	"github.com/wudi/pqdfium"
)

//export pqdfium_initialize
func pqdfium_initialize() C.int {
	if _, err := pqdfium.Initialize(); err != nil {
		return 0
	}
	return 1
}

//export pqdfium_extract_text
func pqdfium_extract_text(data *C.uint8_t, size C.size_t) *C.char {
	buf := goBytes(data, size)
	if buf == nil {
		return nil
	}
	lib, err := pqdfium.Initialize()
	if err != nil {
		return nil
	}
	text, err := lib.ExtractTextString(context.Background(), buf)
	if err != nil {
		return nil
	}
	return C.CString(text)
}

//export pqdfium_pdf_to_json
func pqdfium_pdf_to_json(data *C.uint8_t, size C.size_t) *C.char {
	buf := goBytes(data, size)
	if buf == nil {
		return nil
	}
	lib, err := pqdfium.Initialize()
	if err != nil {
		return nil
	}
	out, err := lib.PDFToJSON(context.Background(), buf)
	if err != nil {
		return nil
	}
	return C.CString(out)
}

//export pqdfium_free_string
func pqdfium_free_string(str *C.char) {
	if str != nil {
		C.free(unsafe.Pointer(str))
	}
}

//export pqdfium_cleanup
func pqdfium_cleanup() {
	pqdfium.Cleanup()
}

func goBytes(data *C.uint8_t, size C.size_t) []byte {
	if data == nil || size == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(data), C.int(size))
}

func main() {}
