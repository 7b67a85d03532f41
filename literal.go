package findreplace

import (
	"unicode"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// literalScanner finds non-overlapping occurrences of a plain substring.
// It backs the matcher when the effective pattern cannot be compiled.
type literalScanner struct {
	auto  *ahocorasick.Automaton
	fold  bool
	whole bool
}

// newLiteralScanner builds a scanner for term. term must not be empty.
func newLiteralScanner(term string, opts OptionSet) (*literalScanner, error) {
	fold := !opts.IsEnabled(CaseSensitive)

	needle := []byte(term)
	if fold {
		needle, _ = foldCase(term)
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern(needle)
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &literalScanner{
		auto:  auto,
		fold:  fold,
		whole: opts.IsEnabled(WholeWordOnly),
	}, nil
}

// findAll returns byte spans into text in ascending order.
func (s *literalScanner) findAll(text string) []Match {
	var (
		haystack []byte
		origin   []int
	)
	if s.fold {
		haystack, origin = foldCase(text)
	} else {
		haystack = []byte(text)
	}

	var matches []Match
	at := 0
	for at < len(haystack) {
		m := s.auto.Find(haystack, at)
		if m == nil {
			break
		}

		start, end := m.Start, m.End
		if origin != nil {
			start, end = origin[start], origin[end]
		}

		if start < 0 || end < 0 || (s.whole && !isWholeWord(text, start, end)) {
			// A later occurrence may overlap a rejected candidate.
			at = m.Start + 1
			continue
		}

		matches = append(matches, Match{Start: start, End: end})
		at = m.End
	}
	return matches
}

// foldCase maps every rune of s to the smallest rune of its simple case-fold
// orbit, the same equivalence the pattern path compiles. The returned table
// maps every byte
// offset of the folded text (plus its length) back to the byte offset of the
// rune it came from in s, so spans found in the folded text can be reported
// against the original. Offsets inside a folded rune map to -1.
func foldCase(s string) ([]byte, []int) {
	folded := make([]byte, 0, len(s))
	origin := make([]int, 0, len(s)+1)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid byte: copy through untouched.
			folded = append(folded, s[i])
			origin = append(origin, i)
			i++
			continue
		}

		n := len(folded)
		folded = utf8.AppendRune(folded, foldRune(r))
		origin = append(origin, i)
		for range len(folded) - n - 1 {
			origin = append(origin, -1)
		}
		i += size
	}
	origin = append(origin, len(s))

	return folded, origin
}

// isWholeWord reports whether both ends of text[start:end] sit on a word
// boundary.
func isWholeWord(text string, start, end int) bool {
	return isBoundary(text, start) && isBoundary(text, end)
}

// isBoundary reports whether pos lies between a word and a non-word
// character, treating the buffer edges as non-word.
func isBoundary(text string, pos int) bool {
	before, after := false, false
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		before = isWordChar(r)
	}
	if pos < len(text) {
		r, _ := utf8.DecodeRuneInString(text[pos:])
		after = isWordChar(r)
	}
	return before != after
}

// isWordChar reports whether r is a Unicode letter, digit or underscore.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
