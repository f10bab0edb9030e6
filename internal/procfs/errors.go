package procfs

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine marks a line that does not carry the minimum fields
	// its format requires. The whole decode is aborted: a short required
	// line means a kernel/format mismatch, not a benign omission.
	ErrMalformedLine = errors.New("malformed line")

	// ErrBadNumber marks a counter token that fails integer parsing.
	// Missing trailing fields are zero-filled, garbled ones are not.
	ErrBadNumber = errors.New("bad number")

	// ErrUnsupportedVersion is returned when /proc/schedstat reports a
	// layout version this decoder does not understand.
	ErrUnsupportedVersion = errors.New("unsupported schedstat version")

	// ErrInvalidTickRate is returned for a non-positive ticks-per-second
	// value supplied to tick normalization.
	ErrInvalidTickRate = errors.New("invalid tick rate")
)

// ParseError pins a decode failure to the offending file, line and token.
type ParseError struct {
	File  string
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s line %d: field %q: %v", e.File, e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("%s line %d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
