// Command findreplace searches stdin for a term and prints match offsets, a
// match count, or the input with matches replaced.
//
//	findreplace [options] TERM < input
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	getopt "github.com/pborman/getopt/v2"
	"github.com/pborman/options"

	"github.com/coregx/findreplace"
	"github.com/coregx/findreplace/internal/conv"
)

type config struct {
	optSet *getopt.Set

	Help          bool   `getopt:"-h --help             Display this help"`
	CaseSensitive bool   `getopt:"-c --case-sensitive   Match letter case exactly"`
	WholeWord     bool   `getopt:"-w --whole-word       Only match whole words"`
	Regex         bool   `getopt:"-e --regex            Interpret TERM as a regular expression"`
	Replacement   string `getopt:"--replace=text        Print the input with every match replaced by text"`
	First         bool   `getopt:"--first               With --replace, replace only the first match"`
	Count         bool   `getopt:"--count               Print the number of matches"`
	Next          int    `getopt:"--next=offset         Print the first match at or after the character offset, wrapping around"`
	Strict        bool   `getopt:"--strict              Fail on a malformed regex or empty TERM instead of reporting no matches"`
	MaxDFAStates  uint   `getopt:"--max-dfa-states=uint Lazy DFA state cache limit"`
}

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("findreplace: %s", err)
	}
}

func run(argv []string, in io.Reader, out, errOut io.Writer) error {
	cfg := &config{
		MaxDFAStates: uint(findreplace.DefaultConfig().MaxDFAStates),
	}
	if err := cfg.initArgvParser(); err != nil {
		return err
	}

	if err := cfg.optSet.Getopt(argv, nil); err != nil {
		cfg.optSet.PrintUsage(errOut)
		return err
	}
	if cfg.Help {
		cfg.optSet.PrintUsage(out)
		return nil
	}

	args := cfg.optSet.Args()
	if len(args) != 1 {
		cfg.optSet.PrintUsage(errOut)
		return fmt.Errorf("expected exactly one TERM, got %d", len(args))
	}
	if cfg.Count && cfg.optSet.IsSet("replace") {
		return errors.New("--count and --replace are mutually exclusive")
	}
	if cfg.First && !cfg.optSet.IsSet("replace") {
		return errors.New("--first requires --replace")
	}
	if cfg.MaxDFAStates > math.MaxUint32 {
		return fmt.Errorf("--max-dfa-states %d out of range", cfg.MaxDFAStates)
	}

	engineConfig := findreplace.DefaultConfig()
	engineConfig.MaxDFAStates = uint32(cfg.MaxDFAStates)

	m, err := findreplace.CompileWithConfig(args[0], cfg.optionSet(), engineConfig)
	if err != nil {
		if cfg.Strict || !(errors.Is(err, findreplace.ErrInvalidPattern) || errors.Is(err, findreplace.ErrEmptyTerm)) {
			return err
		}
		m = nil
	}

	input, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	text := string(input)

	switch {
	case cfg.optSet.IsSet("replace"):
		if m != nil {
			if cfg.First {
				text = m.ReplaceFirst(text, cfg.Replacement)
			} else {
				text = m.ReplaceAll(text, cfg.Replacement)
			}
		}
		_, err = io.WriteString(out, text)
		return err

	case cfg.Count:
		n := 0
		if m != nil {
			n = m.Count(text)
		}
		_, err = fmt.Fprintln(out, n)
		return err

	case cfg.optSet.IsSet("next"):
		if m == nil {
			return nil
		}
		match, ok := m.FindNext(text, conv.ByteOffset(text, cfg.Next))
		if !ok {
			return nil
		}
		_, err = fmt.Fprintln(out, conv.RuneOffsets(text, []int{match.Start})[0])
		return err

	default:
		if m == nil {
			return nil
		}
		for _, pos := range m.FindAll(text) {
			if _, err := fmt.Fprintln(out, pos); err != nil {
				return err
			}
		}
		return nil
	}
}

func (cfg *config) initArgvParser() error {
	// Operate over a private set instead of the pborman/options globals, so
	// run() can be invoked repeatedly
	o := getopt.New()
	if err := options.RegisterSet("", cfg, o); err != nil {
		return fmt.Errorf("option set registration failed: %w", err)
	}
	o.SetProgram("findreplace")
	o.SetParameters("TERM")
	cfg.optSet = o
	return nil
}

func (cfg *config) optionSet() findreplace.OptionSet {
	var opts findreplace.OptionSet
	opts.Set(findreplace.CaseSensitive, cfg.CaseSensitive)
	opts.Set(findreplace.WholeWordOnly, cfg.WholeWord)
	opts.Set(findreplace.UseRegex, cfg.Regex)
	return opts
}
