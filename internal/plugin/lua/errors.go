package lua

import "errors"

// Errors for Lua state and host operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script or handler runs longer
	// than the execution timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNotFunction is returned when a value that must be callable is not.
	ErrNotFunction = errors.New("lua value is not a function")
)
