// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package clibuilder

import (
	"github.com/TayoO/groovy/internal/option"
)

// ModifyFn - Function signature for functions that modify an option
// declaration before it is registered.
type ModifyFn func(opt *option.Option)

// Alias - Adds aliases to an option.
// Single character aliases are short options, anything longer is a long
// option.
func Alias(alias ...string) ModifyFn {
	return func(opt *option.Option) {
		opt.SetAlias(alias...)
	}
}

// Description - Add a description to an option for use in automated help.
func Description(msg string) ModifyFn {
	return func(opt *option.Option) {
		opt.SetDescription(msg)
	}
}

// Default - Declares a default raw value for the option.
//
// The default is coerced and applied only when the option is wholly absent
// from the input, never when the option is present with an empty optional
// value.
func Default(raw string) ModifyFn {
	return func(opt *option.Option) {
		opt.SetDefault(raw)
	}
}

// Optional - Marks the option's single value as omittable.
//
// When no value is available (the next token looks like another option or
// the input ends) the option records a "present, no explicit value" state
// that is distinct from absent: Called reports true, CalledWithValue reports
// false and Value reports true.
func Optional() ModifyFn {
	return func(opt *option.Option) {
		opt.SetOptional()
	}
}

// Separator - Declares a character that splits a single attached token into
// multiple values, for example `-b1,2,3`.
//
// The separator applies only to the token where it is found, never across
// token boundaries.
func Separator(r rune) ModifyFn {
	return func(opt *option.Option) {
		opt.SetSeparator(r)
	}
}

// ArgName - Add an argument name to an option for use in automated help.
// For example, by default a string option will render as:
//
//	--host <string>
//
// If ArgName("hostname") is used, the synopsis will read:
//
//	--host <hostname>
func ArgName(name string) ModifyFn {
	return func(opt *option.Option) {
		opt.SetHelpArgName(name)
	}
}

// Converter - Attaches a custom converter that fully replaces the default
// coercion for this option's scalar values. The converter receives one raw
// value at a time.
func Converter(fn func(value string) (interface{}, error)) ModifyFn {
	return func(opt *option.Option) {
		opt.SetConverter(fn)
	}
}

// Required - Automatically return an error from Parse if the option is not
// called. Optionally provide a custom error message.
func Required(msg ...string) ModifyFn {
	var errTxt string
	if len(msg) >= 1 {
		errTxt = msg[0]
	}
	return func(opt *option.Option) {
		opt.SetRequired(errTxt)
	}
}

// Args - Overrides the amount of values the option consumes per occurrence.
// Use clibuilder.Unlimited for greedy consumption until the next option
// token.
func Args(n int) ModifyFn {
	return func(opt *option.Option) {
		opt.SetNArgs(n)
	}
}

// Keys - Declares the coercion kind for a map option's keys.
func Keys(kind Kind) ModifyFn {
	return func(opt *option.Option) {
		opt.SetKeyKind(kind)
	}
}

// Values - Declares the coercion kind for a map option's values.
func Values(kind Kind) ModifyFn {
	return func(opt *option.Option) {
		opt.SetValueKind(kind)
	}
}

func (b *Builder) declare(opt *option.Option, fns []ModifyFn) *Builder {
	for _, fn := range fns {
		fn(opt)
	}
	b.reg.mustRegister(opt)
	return b
}

// Bool - define a zero arity flag option and its aliases.
// Presence sets the result to true; an attached `=true`/`=false` value is
// also accepted.
func (b *Builder) Bool(name string, fns ...ModifyFn) *Builder {
	return b.declare(option.New(name, option.ScalarShape, option.BoolKind), fns)
}

// String - define a `string` option and its aliases.
func (b *Builder) String(name string, fns ...ModifyFn) *Builder {
	return b.declare(option.New(name, option.ScalarShape, option.StringKind), fns)
}

// Int - define an `int` option and its aliases.
func (b *Builder) Int(name string, fns ...ModifyFn) *Builder {
	return b.declare(option.New(name, option.ScalarShape, option.IntKind), fns)
}

// Int64 - define an `int64` option and its aliases.
func (b *Builder) Int64(name string, fns ...ModifyFn) *Builder {
	return b.declare(option.New(name, option.ScalarShape, option.Int64Kind), fns)
}

// Float64 - define a `float64` option and its aliases.
func (b *Builder) Float64(name string, fns ...ModifyFn) *Builder {
	return b.declare(option.New(name, option.ScalarShape, option.Float64Kind), fns)
}

// Decimal - define an arbitrary precision decimal option and its aliases.
// The coerced value is a decimal.Decimal.
func (b *Builder) Decimal(name string, fns ...ModifyFn) *Builder {
	return b.declare(option.New(name, option.ScalarShape, option.DecimalKind), fns)
}

// File - define a file option and its aliases.
// The raw value is wrapped as-is, no existence check is performed.
func (b *Builder) File(name string, fns ...ModifyFn) *Builder {
	return b.declare(option.New(name, option.ScalarShape, option.FileKind), fns)
}

// Enum - define an option whose value must match one of the given symbolic
// names. Matching is case sensitive.
func (b *Builder) Enum(name string, values []string, fns ...ModifyFn) *Builder {
	opt := option.New(name, option.ScalarShape, option.EnumKind)
	opt.EnumValues = values
	return b.declare(opt, fns)
}

// StringSlice - define a `[]string` option and its aliases.
//
// nargs is the amount of values consumed per occurrence: with nargs 2,
// `-b 1 2` and `-b1,2` (given Separator(',')) are equivalent. Use
// clibuilder.Unlimited for greedy consumption until the next option token.
// Multiple calls to the same option append in encounter order.
func (b *Builder) StringSlice(name string, nargs int, fns ...ModifyFn) *Builder {
	opt := option.New(name, option.ListShape, option.StringKind)
	opt.SetNArgs(nargs)
	return b.declare(opt, fns)
}

// IntSlice - define a `[]int` option and its aliases.
// See StringSlice for the nargs semantics.
func (b *Builder) IntSlice(name string, nargs int, fns ...ModifyFn) *Builder {
	opt := option.New(name, option.ListShape, option.IntKind)
	opt.SetNArgs(nargs)
	return b.declare(opt, fns)
}

// Float64Slice - define a `[]float64` option and its aliases.
// See StringSlice for the nargs semantics.
func (b *Builder) Float64Slice(name string, nargs int, fns ...ModifyFn) *Builder {
	opt := option.New(name, option.ListShape, option.Float64Kind)
	opt.SetNArgs(nargs)
	return b.declare(opt, fns)
}

// StringMap - define a `key=value` map option and its aliases.
//
// Each occurrence contributes one pair: `-Dk=v -Dk2=v2` results in a two
// entry map. Iteration order is the insertion order, duplicate keys last
// write wins. Use Keys and Values to declare non string key or value kinds,
// and Args(2) to collect pairs from two value occurrences (`-D key value`).
func (b *Builder) StringMap(name string, fns ...ModifyFn) *Builder {
	return b.declare(option.New(name, option.MapShape, option.StringKind), fns)
}
