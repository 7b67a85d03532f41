package findreplace

import (
	"strings"
	"testing"
)

func TestReplaceFirst(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		text string
		term string
		repl string
		want string
	}{
		{"only_first", nil, "aaa", "a", "b", "baa"},
		{"no_match", nil, "abc", "x", "y", "abc"},
		{"empty_term", nil, "abc", "", "y", "abc"},
		{"matched_length", nil, "Hello HELLO", "hello", "bye", "bye HELLO"},
		{"longer_replacement", []Option{CaseSensitive}, "a-b", "-", "<->", "a<->b"},
		{"delete", nil, "a-b-c", "-", "", "ab-c"},
		{"regex", []Option{UseRegex}, "a1b22", `\d+`, "#", "a#b22"},
		{"whole_word", []Option{WholeWordOnly}, "catalog cat", "cat", "dog", "catalog dog"},
		{"invalid_regex", []Option{UseRegex}, "a(b", "a(b", "x", "a(b"},
		{"multibyte", nil, "wörld WÖRLD", "wörld", "earth", "earth WÖRLD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.opts...).ReplaceFirst(tt.text, tt.term, tt.repl)
			if got != tt.want {
				t.Errorf("ReplaceFirst(%q, %q, %q) = %q, want %q",
					tt.text, tt.term, tt.repl, got, tt.want)
			}
		})
	}
}

func TestReplaceAll(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		text string
		term string
		repl string
		want string
	}{
		{"shrinking", nil, "abcabc", "abc", "X", "XX"},
		{"growing", nil, "a-b-c", "-", "<->", "a<->b<->c"},
		{"every_char", []Option{CaseSensitive}, "aaa", "a", "b", "bbb"},
		{"no_match", nil, "abc", "x", "y", "abc"},
		{"empty_term", nil, "abc", "", "y", "abc"},
		{"empty_text", nil, "", "a", "b", ""},
		{"matched_length", nil, "Hello HELLO hello", "hello", "bye", "bye bye bye"},
		{"delete", nil, "a-b-c", "-", "", "abc"},
		{"regex_varying_length", []Option{UseRegex}, "a1b22c333", `\d+`, "#", "a#b#c#"},
		{"regex_empty_matches", []Option{UseRegex}, "abc", "x*", "-", "-a-b-c-"},
		{"regex_literal_replacement", []Option{UseRegex}, "ab", "(a)", "$1$1", "$1$1b"},
		{"whole_word", []Option{WholeWordOnly}, "cat catalog cat", "cat", "dog", "dog catalog dog"},
		{"invalid_regex", []Option{UseRegex}, "a(b", "a(b", "x", "a(b"},
		{"multibyte", nil, "wörld WÖRLD wörld", "wörld", "w", "w w w"},
		{"invalid_utf8_fallback", []Option{CaseSensitive}, "xa\xffb a\xffb", "a\xffb", "-", "x- -"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.opts...).ReplaceAll(tt.text, tt.term, tt.repl)
			if got != tt.want {
				t.Errorf("ReplaceAll(%q, %q, %q) = %q, want %q",
					tt.text, tt.term, tt.repl, got, tt.want)
			}
		})
	}
}

// Replacing every match with the exact matched text is a no-op. For a
// case-sensitive literal search every match equals the term.
func TestReplaceAllStability(t *testing.T) {
	texts := []string{
		"abcabc",
		"the cat sat on the mat",
		"aaaa",
		"1+1=2 1+1",
		"",
	}
	terms := []string{"abc", "the", "aa", "1+1", "at", "a"}

	for _, ww := range []bool{false, true} {
		e := New(CaseSensitive)
		e.SetOption(WholeWordOnly, ww)
		for _, text := range texts {
			for _, term := range terms {
				if got := e.ReplaceAll(text, term, term); got != text {
					t.Errorf("wholeWord=%v ReplaceAll(%q, %q, %q) = %q, want unchanged",
						ww, text, term, term, got)
				}
			}
		}
	}
}

// Without matches ReplaceAll is the identity.
func TestReplaceAllNoMatchIdentity(t *testing.T) {
	e := New(WholeWordOnly)
	text := "catalog bobcat"
	if len(e.FindAll(text, "cat")) != 0 {
		t.Fatalf("expected no whole-word matches")
	}
	if got := e.ReplaceAll(text, "cat", "dog"); got != text {
		t.Errorf("ReplaceAll = %q, want %q", got, text)
	}
}

// Reverse-order splicing must agree with a left-to-right rebuild.
func TestSpliceMatchesForwardRebuild(t *testing.T) {
	text := strings.Repeat("ab-cd-", 50)
	m, err := Compile("-", NewOptionSet())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	matches := m.FindAllIndex(text)

	var b strings.Builder
	prev := 0
	for _, match := range matches {
		b.WriteString(text[prev:match.Start])
		b.WriteString("<=>")
		prev = match.End
	}
	b.WriteString(text[prev:])

	if got := splice(text, matches, "<=>"); got != b.String() {
		t.Errorf("splice result differs from forward rebuild")
	}
}
