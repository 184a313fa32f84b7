package aamva

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrFormat     = errors.New("aamva: malformed barcode")
	ErrFieldParse = errors.New("aamva: invalid field value")
	ErrDateParse  = errors.New("aamva: invalid date")
)

// FormatError reports an undersized or malformed header, or a subfile
// range that falls outside the barcode text.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "aamva: malformed barcode: " + e.Reason
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// FieldParseError reports a numeric field whose digits cannot be parsed.
type FieldParseError struct {
	Field Field
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	msg := fmt.Sprintf("aamva: invalid %s value %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FieldParseError) Is(target error) bool {
	return target == ErrFieldParse
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}

// DateParseError reports a date field that is not an 8-digit yyyyMMdd
// calendar date.
type DateParseError struct {
	Field Field
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	msg := fmt.Sprintf("aamva: invalid %s date %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DateParseError) Is(target error) bool {
	return target == ErrDateParse
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
