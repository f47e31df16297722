package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks
var (
	ErrFormat     = errors.New("recipe format error")
	ErrIO         = errors.New("recipe file I/O error")
	ErrOutOfRange = errors.New("index out of range")
	ErrSignature  = errors.New("recipe file signature error")
	ErrInvalid    = errors.New("invalid recipe")
)

// Reasons reported by FormatError
const (
	ReasonMalformedIngredient   = "malformed ingredient line"
	ReasonContentBeforeMarker   = "content before first section marker"
	ReasonIngredientBeforeName  = "ingredient before recipe name"
	ReasonInstructionBeforeName = "instruction before recipe name"
)

// FormatError reports a line of the recipe file that could not be classified
type FormatError struct {
	Line   int // 1-based
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Is matches ErrFormat
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// IOError wraps a failure to read or write the backing file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying os error
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is matches ErrIO
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// OutOfRangeError reports an invalid index into the recipe collection
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

// Is matches ErrOutOfRange
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
