package rotation

import "errors"

// Errors returned by request construction and the sequencer.
var (
	// ErrUnknownVariant indicates a variant tag that names no trig function.
	ErrUnknownVariant = errors.New("rotation: unknown variant")

	// ErrInvalidRepeat indicates a repeat count below one.
	ErrInvalidRepeat = errors.New("rotation: repeat count must be positive")

	// ErrInvalidRunTime indicates a negative run time.
	ErrInvalidRunTime = errors.New("rotation: run time must not be negative")

	// ErrNotStarted indicates Interpolate or Finish before Begin.
	ErrNotStarted = errors.New("rotation: sequencer not started")

	// ErrAlreadyStarted indicates Begin on a running sequencer.
	ErrAlreadyStarted = errors.New("rotation: sequencer already started")

	// ErrFinished indicates a call after Finish.
	ErrFinished = errors.New("rotation: sequencer finished")
)
