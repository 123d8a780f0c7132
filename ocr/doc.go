package ocr

// Package ocr defines the contract for plugging third-party OCR engines
// (for example, Tesseract) into the text extraction fallback for pages
// without a usable text layer. The interface is transport-agnostic so
// engines can be backed by native libraries, local binaries, or remote
// APIs without leaking provider-specific concerns into callers.
