package pqdfium

import (
	"context"
	"errors"
	"testing"
)

func TestNewInitializationFailure(t *testing.T) {
	cause := errors.New("no usable backend")
	_, err := New(WithEngine(&fakeEngine{initErr: cause}), WithTransformer(&fakeTransformer{}))
	if !errors.Is(err, ErrInitializationFailed) {
		t.Fatalf("error = %v, want ErrInitializationFailed", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	engine := &fakeEngine{}
	lib, err := New(WithEngine(engine), WithTransformer(&fakeTransformer{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := lib.Close(); err != nil {
			t.Fatalf("Close() #%d error = %v", i, err)
		}
	}
	if engine.destroys != 1 {
		t.Fatalf("engine destroyed %d times, want 1", engine.destroys)
	}
}

func TestOperationsAfterCloseReturnErrClosed(t *testing.T) {
	engine := &fakeEngine{pages: []pageSpec{{units: textUnits("x")}}}
	lib, err := New(WithEngine(engine), WithTransformer(&fakeTransformer{out: "{}"}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	lib.Close()

	if _, err := lib.ExtractText(context.Background(), samplePDF); !errors.Is(err, ErrClosed) {
		t.Fatalf("ExtractText after Close: error = %v, want ErrClosed", err)
	}
	if _, err := lib.PDFToJSON(context.Background(), samplePDF); !errors.Is(err, ErrClosed) {
		t.Fatalf("PDFToJSON after Close: error = %v, want ErrClosed", err)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	t.Cleanup(Cleanup)
	engine := &fakeEngine{}

	first, err := Initialize(WithEngine(engine), WithTransformer(&fakeTransformer{}))
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	second, err := Initialize()
	if err != nil {
		t.Fatalf("second Initialize() error = %v", err)
	}
	if first != second {
		t.Fatal("Initialize must return the same library on repeat calls")
	}
	if engine.inits != 1 {
		t.Fatalf("engine initialized %d times, want 1", engine.inits)
	}
}

func TestInitializeAfterCleanupYieldsFreshLibrary(t *testing.T) {
	t.Cleanup(Cleanup)

	first, err := Initialize(WithEngine(&fakeEngine{}), WithTransformer(&fakeTransformer{}))
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	Cleanup()

	if _, err := first.ExtractText(context.Background(), samplePDF); !errors.Is(err, ErrClosed) {
		t.Fatalf("old handle after Cleanup: error = %v, want ErrClosed", err)
	}

	engine := &fakeEngine{pages: []pageSpec{{units: textUnits("fresh")}}}
	second, err := Initialize(WithEngine(engine), WithTransformer(&fakeTransformer{}))
	if err != nil {
		t.Fatalf("Initialize after Cleanup: error = %v", err)
	}
	if second == first {
		t.Fatal("Initialize after Cleanup must build a fresh library")
	}
	got, err := second.ExtractTextString(context.Background(), samplePDF)
	if err != nil || got != "fresh" {
		t.Fatalf("fresh library unusable: %q, %v", got, err)
	}
}

func TestCleanupWithoutInitialize(t *testing.T) {
	Cleanup()
	Cleanup()
}
