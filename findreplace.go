// Package findreplace provides a configurable search-and-replace engine for
// in-memory text.
//
// A search term is combined with a set of independent options into a
// matcher:
//   - CaseSensitive: exact-case matching (the default ignores case)
//   - WholeWordOnly: matches must sit on word boundaries, where word
//     characters are Unicode letters, digits and underscore
//   - UseRegex: the term is a regular expression instead of literal text
//
// Matching is performed by github.com/coregx/coregex. Ignoring case follows
// Unicode simple case folding, so σ, ς and Σ all match each other. If the effective pattern
// cannot be compiled and UseRegex is not set, the engine falls back to a plain
// substring scan. A malformed pattern with UseRegex set yields no matches.
//
// Basic usage:
//
//	e := findreplace.New(findreplace.WholeWordOnly)
//	fmt.Println(e.FindAll("cat catalog", "cat"))            // [0]
//	fmt.Println(e.ReplaceAll("cat catalog", "cat", "dog"))  // "dog catalog"
//
// Callers that need to tell a malformed pattern apart from "no matches" use
// Compile, which reports a *PatternError.
//
// Offsets:
//   - FindAll reports character (rune) offsets of match starts
//   - FindAllIndex reports byte spans suitable for slicing the text
package findreplace

// Engine holds the options used for find and replace calls.
//
// An Engine is meant to be owned by one caller at a time. It performs no
// locking: changing options while another goroutine searches with the same
// Engine is a data race.
type Engine struct {
	opts   OptionSet
	config Config
}

// New returns an engine with the given options enabled and the default
// engine configuration.
func New(opts ...Option) *Engine {
	return NewWithConfig(DefaultConfig(), opts...)
}

// NewWithConfig returns an engine with the given configuration and options.
func NewWithConfig(config Config, opts ...Option) *Engine {
	return &Engine{
		opts:   NewOptionSet(opts...),
		config: config,
	}
}

// SetOption enables or disables opt. It is idempotent.
func (e *Engine) SetOption(opt Option, enabled bool) {
	e.opts.Set(opt, enabled)
}

// IsEnabled reports whether opt is enabled.
func (e *Engine) IsEnabled(opt Option) bool {
	return e.opts.IsEnabled(opt)
}

// Options returns a copy of the current option set.
func (e *Engine) Options() OptionSet {
	return e.opts
}

// matcher compiles term under the current options. It returns nil when
// nothing can match: an empty term or a malformed regex.
func (e *Engine) matcher(term string) *Matcher {
	m, err := CompileWithConfig(term, e.opts, e.config)
	if err != nil {
		return nil
	}
	return m
}

// FindAll returns the character offsets of all matches of term in text, in
// ascending order. It returns nil when term is empty, text is empty, nothing
// matches, or term is a malformed regex with UseRegex enabled.
func (e *Engine) FindAll(text, term string) []int {
	m := e.matcher(term)
	if m == nil {
		return nil
	}
	return m.FindAll(text)
}

// FindAllIndex is like FindAll but returns byte spans.
func (e *Engine) FindAllIndex(text, term string) []Match {
	m := e.matcher(term)
	if m == nil {
		return nil
	}
	return m.FindAllIndex(text)
}

// Count returns the number of matches of term in text.
func (e *Engine) Count(text, term string) int {
	return len(e.FindAllIndex(text, term))
}

// FindNext returns the first match of term at or after byte offset from,
// wrapping around to the start of text when needed.
func (e *Engine) FindNext(text, term string, from int) (Match, bool) {
	m := e.matcher(term)
	if m == nil {
		return Match{}, false
	}
	return m.FindNext(text, from)
}

// ReplaceFirst replaces the first match of term in text with replacement.
// Without a match text is returned unchanged.
func (e *Engine) ReplaceFirst(text, term, replacement string) string {
	m := e.matcher(term)
	if m == nil {
		return text
	}
	return m.ReplaceFirst(text, replacement)
}

// ReplaceAll replaces every match of term in text with replacement. All
// matches are located in the original text before any substitution.
func (e *Engine) ReplaceAll(text, term, replacement string) string {
	m := e.matcher(term)
	if m == nil {
		return text
	}
	return m.ReplaceAll(text, replacement)
}

// FindAll returns the character offsets of all matches of term in text
// under opts. See Engine.FindAll.
func FindAll(text, term string, opts OptionSet) []int {
	e := Engine{opts: opts, config: DefaultConfig()}
	return e.FindAll(text, term)
}

// ReplaceFirst replaces the first match of term in text under opts.
func ReplaceFirst(text, term, replacement string, opts OptionSet) string {
	e := Engine{opts: opts, config: DefaultConfig()}
	return e.ReplaceFirst(text, term, replacement)
}

// ReplaceAll replaces every match of term in text under opts.
func ReplaceAll(text, term, replacement string, opts OptionSet) string {
	e := Engine{opts: opts, config: DefaultConfig()}
	return e.ReplaceAll(text, term, replacement)
}
