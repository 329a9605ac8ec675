package anim

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRate = errors.New("anim: unknown rate")
	ErrInvalidFPS  = errors.New("anim: fps must be positive")
	ErrEmptyStep   = errors.New("anim: step has no animation")
)

// FrameError wraps a failure with the frame it happened on.
type FrameError struct {
	Frame int
	Alpha float64
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (alpha %.3f): %v", e.Frame, e.Alpha, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
