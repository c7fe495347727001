package config

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnsupportedFormat indicates a file extension no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ParseError reports a file that one of the decoders rejected.
type ParseError struct {
	Path   string
	Format string // "toml", "yaml" or "env"

	// Line and Column are 1-based; zero when the decoder gave no position.
	Line   int
	Column int

	Message string
	Err     error
}

// NewParseError wraps err, a decoder failure for the file at path.
func NewParseError(format, path string, err error) *ParseError {
	return &ParseError{Path: path, Format: format, Message: err.Error(), Err: err}
}

// Location returns "path", "path:line" or "path:line:column".
func (e *ParseError) Location() string {
	loc := e.Path
	if e.Line > 0 {
		loc += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			loc += ":" + strconv.Itoa(e.Column)
		}
	}
	return loc
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%s: %s", e.Location(), e.Message)
	}
	return fmt.Sprintf("%s: invalid %s: %s", e.Location(), e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
