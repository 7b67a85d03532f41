package findreplace

import (
	"testing"
	"unicode/utf8"
)

// FuzzFindAll checks the match ordering invariant and the replace
// properties for arbitrary text, term and options.
func FuzzFindAll(f *testing.F) {
	f.Add("Hello hello", "hello", uint8(0))
	f.Add("cat catalog", "cat", uint8(WholeWordOnly))
	f.Add("abcabc", "abc", uint8(CaseSensitive))
	f.Add("a1b22c333", `\d+`, uint8(UseRegex))
	f.Add("abc", "x*", uint8(UseRegex|CaseSensitive))
	f.Add("xa\xffb a\xffb", "a\xffb", uint8(CaseSensitive|WholeWordOnly))
	f.Add("İx ix", "ix", uint8(0))
	f.Add("\u212Ax kx Σ σ ς", "σ", uint8(0))
	f.Add("é cat écat caté", "cat", uint8(WholeWordOnly|UseRegex))

	f.Fuzz(func(t *testing.T, text, term string, flags uint8) {
		opts := OptionSet(flags) & NewOptionSet(CaseSensitive, WholeWordOnly, UseRegex)
		e := Engine{opts: opts, config: DefaultConfig()}

		matches := e.FindAllIndex(text, term)
		for i, m := range matches {
			if m.Start < 0 || m.End > len(text) || m.Start > m.End {
				t.Fatalf("match %v out of range for text of %d bytes", m, len(text))
			}
			if i > 0 {
				prev := matches[i-1]
				if m.Start < prev.End || m.Start <= prev.Start {
					t.Fatalf("match %v overlaps or precedes %v", m, prev)
				}
			}
		}

		if n := len(e.FindAll(text, term)); n != len(matches) {
			t.Fatalf("FindAll returned %d positions, FindAllIndex %d", n, len(matches))
		}

		if len(matches) == 0 {
			if got := e.ReplaceAll(text, term, "REPL"); got != text {
				t.Fatalf("ReplaceAll without matches changed text: %q", got)
			}
			return
		}

		// Case-sensitive literal matches equal the term, so replacing each
		// with the term leaves the text intact.
		if opts.IsEnabled(CaseSensitive) && !opts.IsEnabled(UseRegex) && utf8.ValidString(text) {
			if got := e.ReplaceAll(text, term, term); got != text {
				t.Fatalf("ReplaceAll(term, term) = %q, want %q", got, text)
			}
		}

		first := matches[0]
		want := text[:first.Start] + "REPL" + text[first.End:]
		if got := e.ReplaceFirst(text, term, "REPL"); got != want {
			t.Fatalf("ReplaceFirst = %q, want %q", got, want)
		}
	})
}
