package findreplace

import "slices"

// ReplaceFirst returns a copy of text with the first match replaced by
// replacement. The replacement is inserted literally. Text without matches is
// returned unchanged.
func (m *Matcher) ReplaceFirst(text, replacement string) string {
	matches := m.FindAllIndex(text)
	if len(matches) == 0 {
		return text
	}
	return splice(text, matches[:1], replacement)
}

// ReplaceAll returns a copy of text with every match replaced by
// replacement. The replacement is inserted literally. Text without matches is
// returned unchanged.
func (m *Matcher) ReplaceAll(text, replacement string) string {
	return splice(text, m.FindAllIndex(text), replacement)
}

// splice replaces each span in matches, which must be ascending,
// non-overlapping and computed against text.
//
// Spans are processed last to first: a substitution only shifts the bytes
// after it, so the offsets of the spans still to be processed stay valid.
func splice(text string, matches []Match, replacement string) string {
	if len(matches) == 0 {
		return text
	}

	buf := []byte(text)
	repl := []byte(replacement)
	for i := len(matches) - 1; i >= 0; i-- {
		buf = slices.Replace(buf, matches[i].Start, matches[i].End, repl...)
	}
	return string(buf)
}
