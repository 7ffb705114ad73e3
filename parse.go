// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package clibuilder

import (
	"fmt"

	"github.com/TayoO/groovy/internal/argiterator"
	"github.com/TayoO/groovy/internal/option"
	"github.com/TayoO/groovy/text"
)

// occurrence - accumulated raw values for one option across all of its
// appearances in a single argument vector.
type occurrence struct {
	opt      *option.Option
	lastUsed string   // name or alias used in the input, for error reporting
	values   []string // raw values in encounter order
	explicit bool     // at least one appearance carried an explicit value
	noValue  bool     // the latest appearance carried no value (optional arg)
}

// parseState - per Parse call scratch space. The registry itself is never
// mutated during a parse so a frozen Builder can parse concurrently.
type parseState struct {
	occurrences map[string]*occurrence // keyed by canonical option name
	remainder   []string
}

// occ - Returns the accumulated occurrence for the option, creating it on
// first use.
func (s *parseState) occ(opt *option.Option, used string) *occurrence {
	if o, ok := s.occurrences[opt.Name]; ok {
		o.lastUsed = used
		return o
	}
	o := &occurrence{opt: opt, lastUsed: used}
	s.occurrences[opt.Name] = o
	return o
}

// parse - Walks the argument vector token by token.
//
// The terminator '--' sends everything after it to the remainder untouched.
// Non option tokens go to the remainder in order.
func (r *registry) parse(args []string) (*parseState, error) {
	state := &parseState{
		occurrences: map[string]*occurrence{},
		remainder:   []string{},
	}
	it := argiterator.New(args)
	for it.Next() {
		tok := classify(it.Value())
		Logger.Printf("token %q class %d", tok.Verbatim, tok.Class)
		switch tok.Class {
		case classTerminator:
			state.remainder = append(state.remainder, it.Remaining()...)
		case classText:
			state.remainder = append(state.remainder, tok.Verbatim)
		case classLong:
			if err := r.parseLong(it, tok, state); err != nil {
				return nil, err
			}
		case classShort:
			if err := r.parseShort(it, tok, state); err != nil {
				return nil, err
			}
		}
	}
	return state, nil
}

func (r *registry) unknown(state *parseState, verbatim string) error {
	switch r.unknownMode {
	case Pass:
		state.remainder = append(state.remainder, verbatim)
		return nil
	case Warn:
		fmt.Fprintf(Writer, text.WarningOnUnknown+"\n", verbatim)
		state.remainder = append(state.remainder, verbatim)
		return nil
	default: // Fail
		return fmt.Errorf(text.MessageOnUnknown+"%w", verbatim, ErrorUnknownOption)
	}
}

func (r *registry) parseLong(it *argiterator.Iterator, tok token, state *parseState) error {
	opt, used, err := r.resolveLong(tok.Name)
	if err != nil {
		return err
	}
	if opt == nil {
		return r.unknown(state, tok.Verbatim)
	}
	return r.consume(it, state.occ(opt, used), tok.Arg, tok.HasArg)
}

// parseShort - Walks a single dash token character by character.
//
// Each recognized zero arity character counts as one flag of a bundle. The
// first value taking character consumes the rest of the token as its attached
// value and ends the scan.
//
// An unrecognized first character routes the whole token to the remainder
// when the unknown mode allows it, or when the token has more than one
// character and strict single dash mode is off (single dash long options in
// the style of ant or find). An unrecognized character after a recognized
// flag is always an error since at that point the token is known to be a
// bundle.
func (r *registry) parseShort(it *argiterator.Iterator, tok token, state *parseState) error {
	chars := []rune(tok.Name)
	for i, c := range chars {
		s := string(c)
		opt := r.resolveShort(s)
		if opt == nil {
			if i == 0 {
				if r.unknownMode != Fail {
					return r.unknown(state, tok.Verbatim)
				}
				if len(chars) > 1 && !r.strictSingleDash {
					state.remainder = append(state.remainder, tok.Verbatim)
					return nil
				}
				return fmt.Errorf(text.MessageOnUnknown+"%w", tok.Verbatim, ErrorUnknownOption)
			}
			return fmt.Errorf(text.MessageOnUnknown+"%w", "-"+s, ErrorUnknownOption)
		}
		occ := state.occ(opt, s)
		if opt.TakesValue() {
			attached := string(chars[i+1:])
			hasAttached := attached != ""
			if tok.HasArg {
				// -Dkey=value reassembles the raw pair.
				if hasAttached {
					attached += "=" + tok.Arg
				} else {
					attached = tok.Arg
				}
				hasAttached = true
			}
			return r.consume(it, occ, attached, hasAttached)
		}
		if i == len(chars)-1 && tok.HasArg {
			// -a=false
			return r.consume(it, occ, tok.Arg, true)
		}
		if err := r.consume(it, occ, "", false); err != nil {
			return err
		}
	}
	return nil
}

// consume - Satisfies one occurrence's arity from the attached value and the
// following tokens.
func (r *registry) consume(it *argiterator.Iterator, occ *occurrence, attached string, hasAttached bool) error {
	opt := occ.opt
	switch opt.Arity {
	case option.Zero:
		if hasAttached {
			occ.values = append(occ.values, attached)
			occ.explicit = true
		}
		return nil
	case option.One:
		// The attached value is kept whole: separators only apply to multi
		// value arities.
		if hasAttached {
			occ.values = append(occ.values, attached)
			occ.explicit = true
			occ.noValue = false
			return nil
		}
		next, ok := it.PeekNextValue()
		if !ok || r.stopsConsumption(next, false) {
			if opt.IsOptional {
				occ.noValue = true
				return nil
			}
			if !ok {
				return fmt.Errorf(text.ErrorMissingArgument+"%w", occ.lastUsed, ErrorMissingArgument)
			}
			return fmt.Errorf(text.ErrorArgumentWithDash+"%w", occ.lastUsed, ErrorMissingArgument)
		}
		it.Next()
		occ.values = append(occ.values, it.Value())
		occ.explicit = true
		occ.noValue = false
		return nil
	case option.Fixed:
		collected := []string{}
		if hasAttached {
			collected = opt.Split(attached)
		}
		for len(collected) < opt.NArgs {
			next, ok := it.PeekNextValue()
			if !ok {
				return fmt.Errorf(text.ErrorMissingArgument+"%w", occ.lastUsed, ErrorMissingArgument)
			}
			if r.stopsConsumption(next, false) {
				return fmt.Errorf(text.ErrorArgumentWithDash+"%w", occ.lastUsed, ErrorMissingArgument)
			}
			it.Next()
			collected = append(collected, opt.Split(it.Value())...)
		}
		occ.values = append(occ.values, collected...)
		occ.explicit = true
		return nil
	default: // option.Variable
		collected := []string{}
		if hasAttached {
			collected = opt.Split(attached)
		}
		for {
			next, ok := it.PeekNextValue()
			if !ok || r.stopsConsumption(next, true) {
				break
			}
			it.Next()
			collected = append(collected, opt.Split(it.Value())...)
		}
		if len(collected) == 0 {
			return fmt.Errorf(text.ErrorMissingArgument+"%w", occ.lastUsed, ErrorMissingArgument)
		}
		occ.values = append(occ.values, collected...)
		occ.explicit = true
		return nil
	}
}

// stopsConsumption - Decides whether a peeked token ends value consumption.
//
// Fixed and single value arities stop at anything that looks like an option,
// a greedy arity keeps consuming until a token that resolves to a known
// option or the terminator. That way `--list -unknown-looking-value` is an
// arity error for a fixed list but a value for a greedy one.
func (r *registry) stopsConsumption(s string, greedy bool) bool {
	tok := classify(s)
	switch tok.Class {
	case classText:
		return false
	case classTerminator:
		return true
	}
	if !greedy {
		return true
	}
	if tok.Class == classLong {
		opt, _, err := r.resolveLong(tok.Name)
		return opt != nil || err != nil
	}
	chars := []rune(tok.Name)
	return len(chars) > 0 && r.resolveShort(string(chars[0])) != nil
}

// Parse - Processes the given argument vector, normally os.Args[1:].
//
// The first call freezes the registry: option declarations after that panic.
// A frozen Builder can Parse any amount of argument vectors, each call is
// independent and the same input always produces the same Result.
func (b *Builder) Parse(args []string) (*Result, error) {
	b.reg.frozen = true
	Logger.Printf("Parse %v", args)
	state, err := b.reg.parse(args)
	if err != nil {
		return nil, err
	}
	return buildResult(b.reg, state)
}
