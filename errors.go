package pqdfium

import (
	"errors"
	"fmt"
)

var (
	// ErrInitializationFailed reports that the native engine could not be
	// brought up.
	ErrInitializationFailed = errors.New("native engine initialization failed")

	// ErrInvalidInput reports a nil or zero-length document buffer.
	ErrInvalidInput = errors.New("document buffer is nil or empty")

	// ErrClosed reports a call on a library that has been closed. The
	// library must be recreated with Initialize or New before further use.
	ErrClosed = errors.New("library is closed")
)

// ExtractionError reports that the native engine failed to load the
// document or produce text from it. Per-page failures do not raise it;
// they surface as warnings on the extraction result.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("text extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ConversionError reports that the JSON export call failed.
type ConversionError struct {
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdf to json conversion failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("pdf to json conversion failed: %s", e.Reason)
}

func (e *ConversionError) Unwrap() error { return e.Err }
