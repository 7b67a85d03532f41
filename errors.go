package findreplace

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrEmptyTerm indicates an empty search term was passed to Compile
	ErrEmptyTerm = errors.New("empty search term")

	// ErrInvalidPattern indicates the search term is not a valid regular expression
	ErrInvalidPattern = errors.New("invalid search pattern")

	// ErrUnknownOption indicates an option name ParseOption does not recognize
	ErrUnknownOption = errors.New("unknown match option")
)

// PatternError reports a search pattern that failed to compile.
type PatternError struct {
	// Pattern is the effective pattern after escaping, boundary wrapping
	// and case flags were applied.
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *PatternError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
}

// Unwrap returns the underlying compile error
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidPattern) hold for every PatternError.
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}
