package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := Wrap(fmt.Errorf("no display"), CodeCaptureFailed, "screenshot failed").
		WithMetadata("backend", "scrot")

	msg := err.Error()
	for _, want := range []string{"[CAPTURE_FAILED]", "screenshot failed", "backend:scrot", "no display"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := fmt.Errorf("run: %w", Wrap(cause, CodeOCRFailed, "ocr"))

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if CodeOf(err) != CodeOCRFailed {
		t.Errorf("expected OCR_FAILED, got %s", CodeOf(err))
	}
}

func TestIsCode(t *testing.T) {
	inner := New(CodeDecodeFailed, "bad entity")
	outer := Wrap(inner, CodeTranslationFailed, "translate")

	if !IsCode(outer, CodeTranslationFailed) {
		t.Error("expected outer code to match")
	}
	if !IsCode(outer, CodeDecodeFailed) {
		t.Error("expected inner code to match through the chain")
	}
	if IsCode(outer, CodeCaptureFailed) {
		t.Error("unexpected match for CAPTURE_FAILED")
	}
	if IsCode(stderrors.New("plain"), CodeUnknown) {
		t.Error("plain errors carry no code")
	}
	if CodeOf(stderrors.New("plain")) != CodeUnknown {
		t.Error("expected UNKNOWN for plain errors")
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeConfigInvalid, "unknown language %q", "Klingon")
	if err.Message != `unknown language "Klingon"` {
		t.Errorf("unexpected message %q", err.Message)
	}
}
