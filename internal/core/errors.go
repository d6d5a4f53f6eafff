package core

import (
	"errors"
	"fmt"
)

var (
	ErrDecode          = errors.New("image could not be decoded")
	ErrCapture         = errors.New("image could not be captured")
	ErrNoImage         = errors.New("no image loaded")
	ErrNoOriginal      = errors.New("no original image to restore")
	ErrInvalidArgument = errors.New("invalid argument")
)

// DecodeError reports a payload that could not be turned into an image
type DecodeError struct {
	Size int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %d byte payload: %v", e.Size, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// CaptureError reports a failure to open the frame source or read a frame from it.
// Frame is zero for open failures, otherwise the 1-based index of the failed read.
type CaptureError struct {
	Frame int
	Err   error
}

func (e *CaptureError) Error() string {
	if e.Frame == 0 {
		return fmt.Sprintf("open frame source: %v", e.Err)
	}
	return fmt.Sprintf("read frame %d: %v", e.Frame, e.Err)
}

func (e *CaptureError) Unwrap() []error {
	return []error{ErrCapture, e.Err}
}

// InvalidArgumentError reports an operator parameter that violates its precondition
type InvalidArgumentError struct {
	Op  string
	Err error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InvalidArgumentError) Unwrap() []error {
	return []error{ErrInvalidArgument, e.Err}
}
