package core

import "errors"

// Error kinds shared by the engine packages. Packages wrap them with their
// own prefix, so callers match with errors.Is.
var (
	// ErrInvalidArgument reports a bad value passed at construction time.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState reports an operation called in the wrong lifecycle state.
	ErrIllegalState = errors.New("illegal state")
)
