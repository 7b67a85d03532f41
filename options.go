package findreplace

import (
	"fmt"
	"strings"
)

// Option is a single matching modifier. Options are independent bit flags.
type Option uint8

const (
	// CaseSensitive makes matching exact-case. Without it matching ignores case.
	CaseSensitive Option = 1 << iota

	// WholeWordOnly requires a match to be bounded by non-word characters
	// or by the start/end of the buffer. Word characters are Unicode
	// letters, digits and underscore.
	WholeWordOnly

	// UseRegex interprets the search term as a regular expression instead of
	// literal text. The syntax is RE2's, so \w, \b and \B inside the term
	// stay ASCII-only even though WholeWordOnly uses Unicode word characters.
	UseRegex
)

// allOptions lists every option in String() order.
var allOptions = [...]Option{CaseSensitive, WholeWordOnly, UseRegex}

// String returns the option name as accepted by ParseOption.
func (o Option) String() string {
	switch o {
	case CaseSensitive:
		return "case-sensitive"
	case WholeWordOnly:
		return "whole-word"
	case UseRegex:
		return "regex"
	default:
		return fmt.Sprintf("Option(%d)", uint8(o))
	}
}

// ParseOption returns the option named by s (see Option.String).
func ParseOption(s string) (Option, error) {
	for _, o := range allOptions {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOption, s)
}

// OptionSet is a set of options. The zero value is the empty set, which
// means case-insensitive literal matching anywhere in the buffer.
//
// OptionSet is a plain value; copying it copies the set.
type OptionSet uint8

// NewOptionSet returns a set containing opts.
func NewOptionSet(opts ...Option) OptionSet {
	var s OptionSet
	for _, o := range opts {
		s.Set(o, true)
	}
	return s
}

// Set adds opt to the set when enabled is true and removes it otherwise.
// Adding a present option or removing an absent one is a no-op.
func (s *OptionSet) Set(opt Option, enabled bool) {
	if enabled {
		*s |= OptionSet(opt)
	} else {
		*s &^= OptionSet(opt)
	}
}

// IsEnabled reports whether opt is in the set.
func (s OptionSet) IsEnabled(opt Option) bool {
	return opt != 0 && s&OptionSet(opt) == OptionSet(opt)
}

func (s OptionSet) String() string {
	var names []string
	for _, o := range allOptions {
		if s.IsEnabled(o) {
			names = append(names, o.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
