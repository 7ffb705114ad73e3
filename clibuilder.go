// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package clibuilder - declarative command-line option parser with automated
help generation, inspired by the flexibility of Groovy's CliBuilder.

It operates on any given slice of strings and returns a typed Result plus the
remaining (non used) command line arguments.

Usage

The following is a basic example:

	opt := clibuilder.New()
	opt.Bool("a", clibuilder.Alias("all"), clibuilder.Description("show all"))
	opt.String("o", clibuilder.Alias("output"), clibuilder.Default("out.txt"))
	opt.Int("c", clibuilder.Alias("count"))

	res, err := opt.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = opt.Fprint(os.Stderr)
		os.Exit(1)
	}

	if res.Called("all") {
		// ... do something
	}
	output := res.String("output")
	args := res.Arguments()

Features

* Support for `--long` options, with unique prefix matching.

* Support for short (`-s`) options with bundling (`-ab` = `-a -b`), attached
values (`-a1` = `-a 1`) and value separators (`-b1,2`).

* Options with optional arguments: present with no value is distinct from
absent.

* Supports passing `--` to stop parsing arguments, everything after is left
in the remaining slice.

* Multiple aliases for the same option.

* Scalar, slice and key=value map results with typed coercion, custom
converters and defaults.

* Two phase lifecycle: a mutable builder phase that freezes at the first
Parse call. The frozen registry can parse any amount of argument vectors
and render help concurrently.

Panic

The library will panic if it finds that the programmer defined the same
option or alias twice, or registered an option after the first Parse call.
*/
package clibuilder

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/TayoO/groovy/internal/option"
	"github.com/TayoO/groovy/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - io.Writer to write warnings to. Defaults to os.Stderr.
var Writer io.Writer = os.Stderr

// UnknownMode - Unknown option mode
type UnknownMode int

// Unknown option modes - Action taken when an unknown option is encountered.
const (
	Fail UnknownMode = iota
	Warn
	Pass
)

// Kind - scalar coercion kind of an option's values.
type Kind = option.Kind

// Scalar kinds
const (
	BoolKind    = option.BoolKind
	StringKind  = option.StringKind
	IntKind     = option.IntKind
	Int64Kind   = option.Int64Kind
	Float64Kind = option.Float64Kind
	DecimalKind = option.DecimalKind
	FileKind    = option.FileKind
	EnumKind    = option.EnumKind
)

// Unlimited - arg count for slice options that consume values greedily until
// the next option token.
const Unlimited = option.Unlimited

// Builder - main object. The starting point when using clibuilder.
//
// The Builder is the mutable phase of the lifecycle: declare options, then
// call Parse. The first Parse call freezes the registry, after that the same
// Builder can parse multiple independent argument vectors and render help
// but can't register any new option.
type Builder struct {
	reg *registry
}

// registry - holds the ordered option descriptors and the parser and help
// configuration. Immutable after freeze.
type registry struct {
	byName map[string]*option.Option // option and alias names
	order  []*option.Option          // registration order, used for usage rendering
	frozen bool

	unknownMode      UnknownMode
	strictSingleDash bool

	name          string
	description   string
	usageTemplate string
	headerHeading string
	header        string
	footerHeading string
	footer        string
	sortOptions   bool
	width         int
}

// New returns an empty option Builder.
// For example:
//
//	opt := clibuilder.New()
func New() *Builder {
	return &Builder{reg: &registry{
		byName: map[string]*option.Option{},
		name:   filepath.Base(os.Args[0]),
	}}
}

// Self - Set a custom name and description that will show in the automated
// help. If name is an empty string the executable name is kept.
func (b *Builder) Self(name string, description string) *Builder {
	if name != "" {
		b.reg.name = name
	}
	b.reg.description = description
	return b
}

// SetUnknownMode - Determines how to behave when encountering an unknown
// option.
//
// • 'Fail' (default) will make 'Parse' return an error with the unknown
// option information.
//
// • 'Warn' will make 'Parse' print a user warning indicating there was an
// unknown option. The unknown option will be left in the remaining slice.
//
// • 'Pass' will make 'Parse' ignore any unknown options and they will be
// passed onto the 'remaining' slice.
//
// In every mode, an unrecognized character after a recognized flag inside a
// short option bundle is an error: there is no way to tell values and
// mistyped flags apart at that point.
func (b *Builder) SetUnknownMode(mode UnknownMode) *Builder {
	b.reg.unknownMode = mode
	return b
}

// SetStrictSingleDash - Disables the pass-through of single dash multi
// character tokens whose first character doesn't match any declared short
// option.
//
// By default a token like '-age' against a registry that only knows '--age'
// is routed to the remaining slice, matching the common single-dash long
// option convention of tools like ant. With strict mode it raises an
// unknown option error instead.
func (b *Builder) SetStrictSingleDash() *Builder {
	b.reg.strictSingleDash = true
	return b
}

// SetUsage - Sets the synopsis line template.
//
// The template is literal text except for the '{program}' placeholder which
// expands to the program name. Any other '{word}' placeholder is a rendering
// time error. When no template is set the synopsis is generated from the
// declared options.
func (b *Builder) SetUsage(template string) *Builder {
	b.reg.usageTemplate = template
	return b
}

// SetHeader - Sets a free text block rendered before the option table.
// The heading may be empty.
func (b *Builder) SetHeader(heading, body string) *Builder {
	b.reg.headerHeading = heading
	b.reg.header = body
	return b
}

// SetFooter - Sets a free text block rendered after the option table.
// The heading may be empty.
func (b *Builder) SetFooter(heading, body string) *Builder {
	b.reg.footerHeading = heading
	b.reg.footer = body
	return b
}

// SetSortOptions - Renders the option table and the generated synopsis
// alphabetically sorted instead of in declaration order.
func (b *Builder) SetSortOptions(sorted bool) *Builder {
	b.reg.sortOptions = sorted
	return b
}

// SetWidth - Sets the total width the help output is wrapped to.
// Defaults to 80 columns.
func (b *Builder) SetWidth(width int) *Builder {
	b.reg.width = width
	return b
}

// Register - Adds a previously built option descriptor to the registry.
//
// Returns an error wrapping ErrorDuplicateOption when the descriptor's name
// or any of its aliases collides with an already registered option. The
// fluent declaration methods panic on the same condition instead since a
// literal duplicate declaration is a programmer error.
func (b *Builder) Register(opt *option.Option) error {
	return b.reg.register(opt)
}

func (r *registry) register(opt *option.Option) error {
	if r.frozen {
		panic(fmt.Sprintf("Option '%s' registered after the first Parse call", opt.Name))
	}
	if err := opt.Validate(); err != nil {
		return err
	}
	for _, a := range opt.Aliases {
		Logger.Printf("checking option/alias %s", a)
		if v, ok := r.byName[a]; ok {
			return fmt.Errorf(text.ErrorDuplicateOption+"%w", a, v.Name, ErrorDuplicateOption)
		}
	}
	for _, a := range opt.Aliases {
		r.byName[a] = opt
	}
	r.order = append(r.order, opt)
	return nil
}

// mustRegister - registration helper for the fluent declaration methods.
func (r *registry) mustRegister(opt *option.Option) {
	err := r.register(opt)
	if err != nil {
		panic(err.Error())
	}
}

// resolveShort - Resolves one short option character.
func (r *registry) resolveShort(c string) *option.Option {
	if opt, ok := r.byName[c]; ok {
		return opt
	}
	return nil
}

// resolveLong - Resolves a long option name, first by exact match, then by
// unique prefix. An ambiguous prefix is an error, an unknown name returns
// nil and lets the caller apply the unknown option policy.
func (r *registry) resolveLong(name string) (*option.Option, string, error) {
	if opt, ok := r.byName[name]; ok {
		return opt, name, nil
	}
	matches := []string{}
	for k := range r.byName {
		if len(k) > 1 && strings.HasPrefix(k, name) {
			matches = append(matches, k)
		}
	}
	if len(matches) > 1 {
		sort.Strings(matches)
		return nil, "", fmt.Errorf(text.ErrorAmbiguousOption+"%w", name, matches, ErrorAmbiguousOption)
	}
	if len(matches) == 1 {
		return r.byName[matches[0]], matches[0], nil
	}
	return nil, "", nil
}
