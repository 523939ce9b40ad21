package encoding

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferOverflow means a TLV-LENGTH runs past the end of its buffer.
	ErrBufferOverflow = errors.New("TLV element exceeds buffer")
	// ErrTrailingBytes means bytes follow the single element that was expected.
	ErrTrailingBytes = errors.New("unexpected bytes after TLV element")
)

// ErrFormat is a malformed encoding or textual representation.
type ErrFormat struct {
	Msg string
}

func (e ErrFormat) Error() string {
	return e.Msg
}

// ErrUnrecognizedField is an unknown element whose TLV-TYPE is critical.
type ErrUnrecognizedField struct {
	TypeNum TLNum
}

func (e ErrUnrecognizedField) Error() string {
	return fmt.Sprintf("unrecognized critical field %d", e.TypeNum)
}

type ErrSkipRequired struct {
	Name    string
	TypeNum TLNum
}

func (e ErrSkipRequired) Error() string {
	return fmt.Sprintf("missing required field %s (%d)", e.Name, e.TypeNum)
}

// ErrFailToParse wraps an error in the value of field TypeNum.
type ErrFailToParse struct {
	TypeNum TLNum
	Err     error
}

func (e ErrFailToParse) Error() string {
	return fmt.Sprintf("field %d: %v", e.TypeNum, e.Err)
}

func (e ErrFailToParse) Unwrap() error {
	return e.Err
}

type ErrUnexpectedType struct {
	Expected []TLNum
	Actual   TLNum
}

func (e ErrUnexpectedType) Error() string {
	return fmt.Sprintf("unexpected TLV-TYPE %d, want one of %v", e.Actual, e.Expected)
}
