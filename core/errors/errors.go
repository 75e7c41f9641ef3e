// Package errors provides the closed set of error kinds used by the
// reference-resolution core. Callers branch on kind via errors.Is/As,
// never on message text.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable conditions of the core.
var (
	// ErrMalformedReference indicates a reference string matched neither
	// accepted shape.
	ErrMalformedReference = errors.New("malformed reference")
	// ErrUnknownBook indicates the shape matched but the book portion did
	// not resolve to a canonical book.
	ErrUnknownBook = errors.New("unknown book")
	// ErrRomanOutOfRange indicates a chapter outside the 1-150 range the
	// roman-numeral converter covers.
	ErrRomanOutOfRange = errors.New("roman numeral out of range")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// MalformedReferenceError reports a reference string that matched neither
// the chapter:verse shape nor the chapter-only shape.
type MalformedReferenceError struct {
	Input string // the raw reference string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed reference: %q", e.Input)
}

func (e *MalformedReferenceError) Unwrap() error {
	return ErrMalformedReference
}

// UnknownBookError reports a book portion that could not be resolved.
// Raw carries the exact book text so callers can echo it to the end user.
type UnknownBookError struct {
	Raw string
}

func (e *UnknownBookError) Error() string {
	return fmt.Sprintf("unknown book: %q", e.Raw)
}

func (e *UnknownBookError) Unwrap() error {
	return ErrUnknownBook
}

// RomanRangeError reports a value outside the supported 1-150 range.
type RomanRangeError struct {
	Value int
}

func (e *RomanRangeError) Error() string {
	return fmt.Sprintf("roman numeral out of range: %d (supported 1-150)", e.Value)
}

func (e *RomanRangeError) Unwrap() error {
	return ErrRomanOutOfRange
}

// NotFoundError reports a missing resource with context.
type NotFoundError struct {
	Resource string // type of resource (e.g. "work", "confession", "section")
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewMalformedReference creates a MalformedReferenceError.
func NewMalformedReference(input string) *MalformedReferenceError {
	return &MalformedReferenceError{Input: input}
}

// NewUnknownBook creates an UnknownBookError.
func NewUnknownBook(raw string) *UnknownBookError {
	return &UnknownBookError{Raw: raw}
}

// NewRomanRange creates a RomanRangeError.
func NewRomanRange(value int) *RomanRangeError {
	return &RomanRangeError{Value: value}
}

// NewNotFound creates a NotFoundError.
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
