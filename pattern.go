package findreplace

import (
	"regexp/syntax"
	"unicode"

	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
)

// Config tunes the underlying regex engine.
type Config = meta.Config

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return coregex.DefaultConfig()
}

// parsePattern translates term and opts into the syntax tree to compile.
//
// Escaping happens before parsing. Case-insensitive literals are expanded
// into explicit classes of their simple case-fold orbit, so the compiled
// program carries no fold-case flag and never rewrites the searched text.
// Word boundaries are not part of the tree; see Matcher.FindAllIndex.
func parsePattern(term string, opts OptionSet) (*syntax.Regexp, error) {
	body := term
	if !opts.IsEnabled(UseRegex) {
		body = coregex.QuoteMeta(term)
	}

	flags := syntax.Perl
	if !opts.IsEnabled(CaseSensitive) {
		flags |= syntax.FoldCase
	}

	re, err := syntax.Parse(body, flags)
	if err != nil {
		return nil, &PatternError{Pattern: body, Err: err}
	}
	return expandFoldCase(re), nil
}

// compilePattern is the attempt-compile step. A failure is an ordinary
// result the caller branches on. config must already be valid.
func compilePattern(term string, opts OptionSet, config Config) (*meta.Engine, error) {
	re, err := parsePattern(term, opts)
	if err != nil {
		return nil, err
	}

	engine, err := meta.CompileRegexp(re, config)
	if err != nil {
		return nil, &PatternError{Pattern: re.String(), Err: err}
	}
	return engine, nil
}

// expandFoldCase rewrites fold-case literals in re into concatenations of
// case-fold classes and clears the FoldCase flag everywhere. Character
// classes were already folded by the parser.
func expandFoldCase(re *syntax.Regexp) *syntax.Regexp {
	if len(re.Sub) > 0 {
		subs := make([]*syntax.Regexp, 0, len(re.Sub))
		for _, sub := range re.Sub {
			sub = expandFoldCase(sub)
			if re.Op == syntax.OpConcat && sub.Op == syntax.OpConcat {
				subs = append(subs, sub.Sub...)
				continue
			}
			subs = append(subs, sub)
		}
		re.Sub = subs
	}

	fold := re.Flags&syntax.FoldCase != 0
	re.Flags &^= syntax.FoldCase
	if re.Op != syntax.OpLiteral || !fold {
		return re
	}

	parts := make([]*syntax.Regexp, len(re.Rune))
	for i, r := range re.Rune {
		parts[i] = foldedRune(r, re.Flags)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return &syntax.Regexp{Op: syntax.OpConcat, Flags: re.Flags, Sub: parts}
}

// foldedRune returns a node matching r in any case.
func foldedRune(r rune, flags syntax.Flags) *syntax.Regexp {
	orbit := caseOrbit(r)
	if len(orbit) == 1 {
		return &syntax.Regexp{Op: syntax.OpLiteral, Flags: flags, Rune: []rune{r}}
	}

	// orbit is sorted; merge neighbours into ranges.
	class := make([]rune, 0, 2*len(orbit))
	for _, f := range orbit {
		if n := len(class); n > 0 && class[n-1]+1 == f {
			class[n-1] = f
			continue
		}
		class = append(class, f, f)
	}
	return &syntax.Regexp{Op: syntax.OpCharClass, Flags: flags, Rune: class}
}

// caseOrbit returns r and every rune equivalent to it under simple case
// folding, in ascending order.
func caseOrbit(r rune) []rune {
	orbit := []rune{r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	// SimpleFold walks upward and wraps once, so rotating the smallest
	// element to the front sorts the orbit.
	low := 0
	for i, f := range orbit {
		if f < orbit[low] {
			low = i
		}
	}
	return append(orbit[low:], orbit[:low]...)
}

// foldRune maps r to the smallest rune of its case-fold orbit.
func foldRune(r rune) rune {
	low := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < low {
			low = f
		}
	}
	return low
}
