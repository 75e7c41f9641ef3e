package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestMalformedReferenceError(t *testing.T) {
	err := NewMalformedReference("nonsense input")
	if !errors.Is(err, ErrMalformedReference) {
		t.Error("MalformedReferenceError should unwrap to ErrMalformedReference")
	}
	if !strings.Contains(err.Error(), "nonsense input") {
		t.Errorf("Error() = %q; want it to contain the input", err.Error())
	}
}

func TestUnknownBookError_EchoesRawText(t *testing.T) {
	err := NewUnknownBook("Gensis")
	if !errors.Is(err, ErrUnknownBook) {
		t.Error("UnknownBookError should unwrap to ErrUnknownBook")
	}
	if !strings.Contains(err.Error(), "Gensis") {
		t.Errorf("Error() = %q; want it to echo the raw book text", err.Error())
	}

	var ube *UnknownBookError
	if !errors.As(err, &ube) {
		t.Fatal("errors.As should find UnknownBookError")
	}
	if ube.Raw != "Gensis" {
		t.Errorf("Raw = %q; want %q", ube.Raw, "Gensis")
	}
}

func TestRomanRangeError(t *testing.T) {
	err := NewRomanRange(151)
	if !errors.Is(err, ErrRomanOutOfRange) {
		t.Error("RomanRangeError should unwrap to ErrRomanOutOfRange")
	}
	if !strings.Contains(err.Error(), "151") {
		t.Errorf("Error() = %q; want it to contain the value", err.Error())
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("work", "institutes")
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should unwrap to ErrNotFound")
	}
	if got, want := err.Error(), "work not found: institutes"; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	wrapped := Wrap(ErrUnknownBook, "resolving alias")
	if !errors.Is(wrapped, ErrUnknownBook) {
		t.Error("wrapped error should still match the sentinel")
	}
}
