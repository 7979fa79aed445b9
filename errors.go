package neon

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDocument    = errors.New("document has no content")
	ErrStartTagRequired = errors.New("start tag expected, '<' not found")
	ErrGtRequired       = errors.New("'>' was required here")
	ErrInvalidComment   = errors.New("comment not terminated")
	ErrPrematureEOF     = errors.New("end of document reached with open elements")
	ErrTagNameMismatch  = errors.New("closing tag does not match open element")

	// ErrInvalidOperation is returned by mutators when the requested
	// change would violate the content/children exclusivity of an
	// element, or otherwise cannot be performed.
	ErrInvalidOperation = errors.New("operation cannot be performed")
)

// ErrParseError wraps a structural error with the location at which it
// was detected. All parse entry points report malformed input through
// this type; use errors.Is against the sentinel errors above to tell
// the conditions apart.
type ErrParseError struct {
	Err        error
	Offset     int // offset in code units from the start of the buffer
	LineNumber int
	Column     int
	Line       string
}

func (e ErrParseError) Error() string {
	return fmt.Sprintf(
		"%s at line %d, column %d\n -> '%s' <-- around here",
		e.Err,
		e.LineNumber,
		e.Column,
		e.Line,
	)
}

func (e ErrParseError) Unwrap() error {
	return e.Err
}

// ErrAttrNotFound is returned by attribute lookups that match nothing.
// Lookups by key populate Token; lookups by position populate Index.
type ErrAttrNotFound struct {
	Token string
	Index int
}

func (e ErrAttrNotFound) Error() string {
	if e.Token != "" {
		return "attribute '" + e.Token + "' not found"
	}
	return fmt.Sprintf("attribute %d not found", e.Index)
}

// ErrChildNotFound is returned by child lookups that match nothing.
// Lookups by name populate Name; lookups by position populate Index.
type ErrChildNotFound struct {
	Name  string
	Index int
}

func (e ErrChildNotFound) Error() string {
	if e.Name != "" {
		return "child '" + e.Name + "' not found"
	}
	return fmt.Sprintf("child %d not found", e.Index)
}
