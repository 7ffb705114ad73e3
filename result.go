// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package clibuilder

import (
	"fmt"

	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/TayoO/groovy/internal/coerce"
	"github.com/TayoO/groovy/internal/option"
	"github.com/TayoO/groovy/text"
)

// File - A file name given as an option value.
// The parser performs no filesystem access: wrapping the raw string keeps
// file values distinguishable from plain strings in the Result.
type File string

func (f File) String() string {
	return string(f)
}

// entry - final state of one declared option after a Parse call.
type entry struct {
	opt       *option.Option
	called    bool
	withValue bool
	value     interface{}            // scalar shape
	list      []interface{}          // list shape
	m         *orderedmap.OrderedMap // map shape
}

// Result - immutable outcome of one Parse call.
//
// All lookups accept the option's name or any of its aliases. Lookups for
// names that were never declared return the zero value of the accessor.
type Result struct {
	reg       *registry
	entries   map[string]*entry // keyed by canonical option name
	arguments []string
}

// buildResult - Coerces the accumulated raw values into the declared kinds
// and applies defaults for the absent options.
func buildResult(reg *registry, state *parseState) (*Result, error) {
	res := &Result{
		reg:       reg,
		entries:   map[string]*entry{},
		arguments: state.remainder,
	}
	for _, opt := range reg.order {
		occ := state.occurrences[opt.Name]
		if occ == nil && opt.IsRequired {
			if opt.IsRequiredErr != "" {
				return nil, fmt.Errorf(opt.IsRequiredErr+"%w", ErrorMissingRequiredOption)
			}
			return nil, fmt.Errorf(text.ErrorMissingRequiredOption+"%w", opt.Name, ErrorMissingRequiredOption)
		}
		e, err := buildEntry(opt, occ)
		if err != nil {
			return nil, err
		}
		res.entries[opt.Name] = e
	}
	return res, nil
}

func buildEntry(opt *option.Option, occ *occurrence) (*entry, error) {
	e := &entry{opt: opt}
	if occ == nil {
		// Defaults apply only when the option is wholly absent.
		if !opt.HasDefault {
			if opt.Shape == option.ScalarShape && opt.Arity == option.Zero {
				e.value = false
			}
			return e, nil
		}
		return e, applyValues(e, opt.Split(opt.DefaultStr))
	}
	e.called = true
	e.withValue = occ.explicit
	if opt.Shape == option.ScalarShape && (occ.noValue || len(occ.values) == 0) {
		// Present with no explicit value: a flag, or an optional argument
		// that was omitted. Distinct from absent.
		e.value = true
		return e, nil
	}
	return e, applyValues(e, occ.values)
}

func applyValues(e *entry, raw []string) error {
	opt := e.opt
	switch opt.Shape {
	case option.ListShape:
		list, err := coerce.List(raw, opt)
		if err != nil {
			return err
		}
		for i, v := range list {
			list[i] = wrapFile(opt, v)
		}
		e.list = list
	case option.MapShape:
		m, err := coerce.Map(raw, opt)
		if err != nil {
			return err
		}
		e.m = m
	default: // option.ScalarShape
		// Repeated scalar occurrences: the last value wins.
		v, err := coerce.Scalar(raw[len(raw)-1], opt)
		if err != nil {
			return err
		}
		e.value = wrapFile(opt, v)
	}
	return nil
}

// wrapFile - file kind values surface as File instead of string.
func wrapFile(opt *option.Option, v interface{}) interface{} {
	if opt.Kind != option.FileKind {
		return v
	}
	if s, ok := v.(string); ok {
		return File(s)
	}
	return v
}

// entry - Resolves a name or alias to its entry, nil when unknown.
func (r *Result) entry(name string) *entry {
	opt, ok := r.reg.byName[name]
	if !ok {
		return nil
	}
	return r.entries[opt.Name]
}

// Called - Indicates if the option was passed on the command line, under any
// of its aliases. A default value doesn't count as a call.
func (r *Result) Called(name string) bool {
	if e := r.entry(name); e != nil {
		return e.called
	}
	return false
}

// CalledWithValue - Indicates if the option was passed with an explicit
// value. False for a bare flag or an optional argument that was omitted.
func (r *Result) CalledWithValue(name string) bool {
	if e := r.entry(name); e != nil {
		return e.withValue
	}
	return false
}

// Value - Returns the coerced value of the option.
//
// Scalars return their kind's Go type, list options return []interface{},
// map options return an insertion ordered *orderedmap.OrderedMap. An option
// present with no explicit value returns true, an absent option with no
// default returns nil (false for flags).
func (r *Result) Value(name string) interface{} {
	e := r.entry(name)
	if e == nil {
		return nil
	}
	switch e.opt.Shape {
	case option.ListShape:
		return e.list
	case option.MapShape:
		return e.m
	default:
		return e.value
	}
}

// Bool - Returns the option's value as a bool.
// True also means "present with no explicit value" for options with an
// optional argument.
func (r *Result) Bool(name string) bool {
	v, _ := r.Value(name).(bool)
	return v
}

// String - Returns the option's value as a string.
func (r *Result) String(name string) string {
	v, _ := r.Value(name).(string)
	return v
}

// Int - Returns the option's value as an int.
func (r *Result) Int(name string) int {
	v, _ := r.Value(name).(int)
	return v
}

// Int64 - Returns the option's value as an int64.
func (r *Result) Int64(name string) int64 {
	v, _ := r.Value(name).(int64)
	return v
}

// Float64 - Returns the option's value as a float64.
func (r *Result) Float64(name string) float64 {
	v, _ := r.Value(name).(float64)
	return v
}

// Decimal - Returns the option's value as an arbitrary precision decimal.
func (r *Result) Decimal(name string) decimal.Decimal {
	v, _ := r.Value(name).(decimal.Decimal)
	return v
}

// FileName - Returns the option's value as a File.
func (r *Result) FileName(name string) File {
	v, _ := r.Value(name).(File)
	return v
}

// List - Returns a list option's values in encounter order.
func (r *Result) List(name string) []interface{} {
	v, _ := r.Value(name).([]interface{})
	return v
}

// StringList - Returns a list option's values as strings.
// Non string elements are skipped.
func (r *Result) StringList(name string) []string {
	out := []string{}
	for _, v := range r.List(name) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// IntList - Returns a list option's values as ints.
// Non int elements are skipped.
func (r *Result) IntList(name string) []int {
	out := []int{}
	for _, v := range r.List(name) {
		if i, ok := v.(int); ok {
			out = append(out, i)
		}
	}
	return out
}

// Float64List - Returns a list option's values as float64s.
// Non float64 elements are skipped.
func (r *Result) Float64List(name string) []float64 {
	out := []float64{}
	for _, v := range r.List(name) {
		if f, ok := v.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

// Map - Returns a map option's pairs, iterable in insertion order:
//
//	for pair := res.Map("define").Oldest(); pair != nil; pair = pair.Next() {
//		fmt.Println(pair.Key, pair.Value)
//	}
func (r *Result) Map(name string) *orderedmap.OrderedMap {
	v, _ := r.Value(name).(*orderedmap.OrderedMap)
	return v
}

// StringMap - Returns a map option's pairs as a plain map[string]string.
// The insertion order is lost, use Map or MapKeys to preserve it.
func (r *Result) StringMap(name string) map[string]string {
	m := r.Map(name)
	if m == nil {
		return nil
	}
	out := map[string]string{}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		k, okK := pair.Key.(string)
		v, okV := pair.Value.(string)
		if okK && okV {
			out[k] = v
		}
	}
	return out
}

// MapKeys - Returns a map option's keys in insertion order.
func (r *Result) MapKeys(name string) []interface{} {
	m := r.Map(name)
	if m == nil {
		return nil
	}
	out := []interface{}{}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Arguments - Returns the remaining command line arguments: everything that
// was not consumed as an option or a value, plus everything after '--', in
// the original order.
func (r *Result) Arguments() []string {
	return r.arguments
}
