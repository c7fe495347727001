package keymap

import "errors"

// Configuration errors returned by Store operations.
var (
	// ErrDuplicateDefault indicates a second default handler for one shortcut.
	ErrDuplicateDefault = errors.New("can not add another default handler")

	// ErrEmptyRange indicates a range pattern that expands to no shortcuts.
	ErrEmptyRange = errors.New("range resolves to no shortcuts")

	// ErrInvalidRange indicates more than one range in a single alternative.
	ErrInvalidRange = errors.New("only one range is allowed per shortcut")

	// ErrRangeTooLarge indicates a range spanning more than MaxRangeSize values.
	ErrRangeTooLarge = errors.New("range is too large")

	// ErrEmptyPattern indicates a pattern without any shortcut.
	ErrEmptyPattern = errors.New("empty shortcut pattern")

	// ErrNilHandler indicates a registration without a handler.
	ErrNilHandler = errors.New("handler is nil")
)
