package findreplace

import (
	"unicode/utf8"

	"github.com/coregx/coregex/meta"

	"github.com/coregx/findreplace/internal/conv"
)

// Match is the byte span [Start, End) of one match in the searched text.
type Match struct {
	Start int
	End   int
}

// Len returns the length of the matched text in bytes.
func (m Match) Len() int {
	return m.End - m.Start
}

// Matcher is a search term compiled together with its options.
//
// A Matcher is immutable and safe for concurrent use.
//
// Example:
//
//	m, err := findreplace.Compile("cat", findreplace.NewOptionSet(findreplace.WholeWordOnly))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.FindAll("cat catalog")) // [0]
type Matcher struct {
	term string
	opts OptionSet

	// Exactly one of engine and lit is set.
	engine *meta.Engine
	lit    *literalScanner
}

// Compile builds a matcher for term under opts with the default engine
// configuration.
//
// It returns ErrEmptyTerm for an empty term. When the effective pattern does
// not compile and UseRegex is set it returns a *PatternError; without UseRegex
// the matcher falls back to plain substring scanning instead.
func Compile(term string, opts OptionSet) (*Matcher, error) {
	return CompileWithConfig(term, opts, DefaultConfig())
}

// CompileWithConfig is like Compile but uses a custom engine configuration.
// An invalid config is reported as the *meta.ConfigError from
// config.Validate and never triggers the fallback.
func CompileWithConfig(term string, opts OptionSet, config Config) (*Matcher, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	engine, err := compilePattern(term, opts, config)
	if err == nil {
		return &Matcher{term: term, opts: opts, engine: engine}, nil
	}
	if opts.IsEnabled(UseRegex) {
		// The term was meant as a regex; do not reinterpret it as text.
		return nil, err
	}
	return newLiteralMatcher(term, opts)
}

// newLiteralMatcher builds a matcher that scans for term as plain text.
func newLiteralMatcher(term string, opts OptionSet) (*Matcher, error) {
	lit, err := newLiteralScanner(term, opts)
	if err != nil {
		return nil, &PatternError{Pattern: term, Err: err}
	}
	return &Matcher{term: term, opts: opts, lit: lit}, nil
}

// Term returns the search term the matcher was built from.
func (m *Matcher) Term() string {
	return m.term
}

// Options returns the options the matcher was built with.
func (m *Matcher) Options() OptionSet {
	return m.opts
}

// Literal reports whether the matcher uses the plain substring fallback.
func (m *Matcher) Literal() bool {
	return m.lit != nil
}

// FindAllIndex returns the byte spans of all matches in text, in ascending
// order. Matches never overlap. An empty text has no matches.
//
// With WholeWordOnly a match counts only if both of its ends sit on a
// boundary between a Unicode word character and anything else. The check is
// applied to the leftmost-first match found at each position: for the regex
// "ca|cat" on "cat", "ca" is rejected and the search moves on.
func (m *Matcher) FindAllIndex(text string) []Match {
	if text == "" {
		return nil
	}
	if m.lit != nil {
		return m.lit.findAll(text)
	}

	haystack := []byte(text)
	whole := m.opts.IsEnabled(WholeWordOnly)

	var matches []Match
	at, lastEnd := 0, -1
	for at <= len(text) {
		start, end, found := m.engine.FindIndicesAt(haystack, at)
		if !found {
			break
		}

		// An empty match right after a match is not reported, as in regexp.
		skip := start == end && start == lastEnd
		if skip || (whole && !isWholeWord(text, start, end)) {
			at = start + runeLen(text, start)
			continue
		}

		matches = append(matches, Match{Start: start, End: end})
		lastEnd = end
		if end > start {
			at = end
		} else {
			at = end + runeLen(text, end)
		}
	}
	return matches
}

// runeLen returns the size of the character at byte offset pos, or 1 at the
// end of text so a search loop can step past it.
func runeLen(text string, pos int) int {
	if pos >= len(text) {
		return 1
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	return size
}

// FindAll returns the character offsets at which matches begin, in
// ascending order.
func (m *Matcher) FindAll(text string) []int {
	matches := m.FindAllIndex(text)
	if len(matches) == 0 {
		return nil
	}
	starts := make([]int, len(matches))
	for i, match := range matches {
		starts[i] = match.Start
	}
	return conv.RuneOffsets(text, starts)
}

// Count returns the number of matches in text.
func (m *Matcher) Count(text string) int {
	return len(m.FindAllIndex(text))
}

// FindNext returns the first match starting at or after byte offset from.
// When there is none the search wraps around to the first match in text.
// The boolean is false only when text has no matches at all.
func (m *Matcher) FindNext(text string, from int) (Match, bool) {
	matches := m.FindAllIndex(text)
	if len(matches) == 0 {
		return Match{}, false
	}
	for _, match := range matches {
		if match.Start >= from {
			return match, true
		}
	}
	return matches[0], true
}
