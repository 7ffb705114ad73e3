// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option descriptor and its methods.
package option

import (
	"fmt"
	"sort"
	"strings"
)

// Unlimited - arg count used to declare a slice option that consumes values
// greedily until the next option token.
const Unlimited = -1

// Arity - Indicates how many values an option consumes per occurrence.
type Arity int

// Arities
const (
	Zero     Arity = iota // presence only flag
	One                   // exactly one value
	Fixed                 // exactly NArgs values
	Variable              // one or more values, consumed greedily
)

// Kind - Indicates the scalar type a raw value is coerced into.
type Kind int

// Scalar kinds
const (
	BoolKind Kind = iota
	StringKind
	IntKind
	Int64Kind
	Float64Kind
	DecimalKind
	FileKind
	EnumKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case Int64Kind:
		return "int64"
	case Float64Kind:
		return "float64"
	case DecimalKind:
		return "decimal"
	case FileKind:
		return "file"
	case EnumKind:
		return "enum"
	default: // StringKind
		return "string"
	}
}

// Shape - Indicates the shape of the final coerced value.
// It is resolved at registration time so callers get statically known shapes.
type Shape int

// Value shapes
const (
	ScalarShape Shape = iota
	ListShape
	MapShape
)

// ConverterFn - Signature for custom converters.
// A converter receives one raw value and fully replaces the default scalar
// coercion for the option it is attached to.
type ConverterFn func(value string) (interface{}, error)

// Option - immutable option descriptor once registered.
//
// Name is the canonical name, Aliases holds Name plus any extra aliases.
// Single character names are short options, anything longer is a long option.
type Option struct {
	Name    string
	Aliases []string

	Arity      Arity
	NArgs      int  // value count for Fixed arity
	IsOptional bool // the single value may be omitted
	Separator  rune // splits one attached token into multiple values, 0 disables

	Shape     Shape
	Kind      Kind
	KeyKind   Kind // map key kind
	ValueKind Kind // map value kind

	EnumValues []string
	Converter  ConverterFn

	HasDefault bool
	DefaultStr string

	IsRequired    bool
	IsRequiredErr string

	// Help
	Description  string
	HelpArgName  string
	HelpSynopsis string
}

// New - Returns a new option descriptor of the given shape and kind.
// The arity and the help placeholder are derived from the shape and kind and
// can be adjusted afterwards through the setters.
func New(name string, shape Shape, kind Kind) *Option {
	opt := &Option{
		Name:      name,
		Aliases:   []string{name},
		Shape:     shape,
		Kind:      kind,
		KeyKind:   StringKind,
		ValueKind: StringKind,
	}
	switch shape {
	case ListShape:
		opt.Arity = Fixed
		opt.NArgs = 1
		opt.HelpArgName = kind.String()
	case MapShape:
		opt.Arity = One
		opt.HelpArgName = "key=value"
	default: // ScalarShape
		if kind == BoolKind {
			opt.Arity = Zero
		} else {
			opt.Arity = One
			opt.HelpArgName = kind.String()
		}
	}
	opt.Synopsis()
	return opt
}

// Validate - Checks that the descriptor is self consistent.
// Called at registration time, before the descriptor becomes immutable.
func (opt *Option) Validate() error {
	if opt.Name == "" {
		return fmt.Errorf("option name can't be empty")
	}
	for _, a := range opt.Aliases {
		if a == "" {
			return fmt.Errorf("option '%s': alias can't be empty", opt.Name)
		}
	}
	if opt.Arity == Fixed && opt.NArgs < 1 {
		return fmt.Errorf("option '%s': fixed arity requires at least one value", opt.Name)
	}
	if opt.IsOptional && opt.Arity != One {
		return fmt.Errorf("option '%s': an optional argument requires an arity of one", opt.Name)
	}
	if opt.Kind == EnumKind && len(opt.EnumValues) == 0 {
		return fmt.Errorf("option '%s': enum options require values", opt.Name)
	}
	return nil
}

// TakesValue - Indicates whether the option ever consumes a value.
func (opt *Option) TakesValue() bool {
	return opt.Arity != Zero
}

// Short - Returns the single character aliases.
func (opt *Option) Short() []string {
	short := []string{}
	for _, a := range opt.Aliases {
		if len(a) == 1 {
			short = append(short, a)
		}
	}
	return short
}

// Long - Returns the multi character aliases.
func (opt *Option) Long() []string {
	long := []string{}
	for _, a := range opt.Aliases {
		if len(a) > 1 {
			long = append(long, a)
		}
	}
	return long
}

// Synopsis - Rebuilds the synopsis shown in the help option table.
// Short aliases sort before long ones.
func (opt *Option) Synopsis() {
	aliases := append(opt.Short(), opt.Long()...)
	for i, a := range aliases {
		if len(a) > 1 {
			aliases[i] = "--" + a
		} else {
			aliases[i] = "-" + a
		}
	}
	opt.HelpSynopsis = strings.Join(aliases, ", ")
	if opt.TakesValue() {
		opt.HelpSynopsis += fmt.Sprintf(" <%s>", opt.HelpArgName)
	}
	if opt.Arity == Variable || (opt.Arity == Fixed && opt.NArgs > 1) {
		opt.HelpSynopsis += "..."
	}
}

// SetAlias - Adds aliases to an option.
func (opt *Option) SetAlias(alias ...string) *Option {
	opt.Aliases = append(opt.Aliases, alias...)
	opt.Synopsis()
	return opt
}

// SetDescription - Updates the Description.
func (opt *Option) SetDescription(s string) *Option {
	opt.Description = s
	return opt
}

// SetHelpArgName - Updates the HelpArgName.
func (opt *Option) SetHelpArgName(s string) *Option {
	opt.HelpArgName = s
	opt.Synopsis()
	return opt
}

// SetDefault - Declares a default raw value, applied when the option is
// absent from the input.
func (opt *Option) SetDefault(s string) *Option {
	opt.HasDefault = true
	opt.DefaultStr = s
	return opt
}

// SetOptional - Marks the option's single value as omittable.
func (opt *Option) SetOptional() *Option {
	opt.IsOptional = true
	return opt
}

// SetSeparator - Declares the value separator character.
func (opt *Option) SetSeparator(r rune) *Option {
	opt.Separator = r
	return opt
}

// SetNArgs - Overrides the amount of values consumed per occurrence.
// Use Unlimited for greedy consumption.
func (opt *Option) SetNArgs(n int) *Option {
	if n == Unlimited {
		opt.Arity = Variable
		opt.NArgs = 0
	} else {
		opt.Arity = Fixed
		opt.NArgs = n
	}
	opt.Synopsis()
	return opt
}

// SetKeyKind - Declares the coercion kind for map keys.
func (opt *Option) SetKeyKind(k Kind) *Option {
	opt.KeyKind = k
	return opt
}

// SetValueKind - Declares the coercion kind for map values.
func (opt *Option) SetValueKind(k Kind) *Option {
	opt.ValueKind = k
	return opt
}

// SetConverter - Attaches a custom converter.
func (opt *Option) SetConverter(fn ConverterFn) *Option {
	opt.Converter = fn
	return opt
}

// SetRequired - Marks an option as required.
func (opt *Option) SetRequired(msg string) *Option {
	opt.IsRequired = true
	opt.IsRequiredErr = msg
	return opt
}

// Split - Splits a raw token on the option's value separator.
// The separator applies only to the token where it is found, never across
// token boundaries.
func (opt *Option) Split(raw string) []string {
	if opt.Separator == 0 {
		return []string{raw}
	}
	return strings.Split(raw, string(opt.Separator))
}

// Sort Interface
func Sort(list []*Option) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}
