// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package coerce

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TayoO/groovy/internal/option"
)

func TestScalarKinds(t *testing.T) {
	cases := []struct {
		name string
		kind option.Kind
		raw  string
		want interface{}
	}{
		{"bool true", option.BoolKind, "true", true},
		{"bool false", option.BoolKind, "false", false},
		{"bool mixed case", option.BoolKind, "True", true},
		{"string", option.StringKind, "hello", "hello"},
		{"int", option.IntKind, "42", 42},
		{"negative int", option.IntKind, "-7", -7},
		{"int64", option.Int64Kind, "9000000000", int64(9000000000)},
		{"float64", option.Float64Kind, "1.5", 1.5},
		{"file", option.FileKind, "a.txt", "a.txt"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opt := option.New("x", option.ScalarShape, c.kind)
			got, err := Scalar(c.raw, opt)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestScalarDecimal(t *testing.T) {
	opt := option.New("price", option.ScalarShape, option.DecimalKind)
	got, err := Scalar("1.10", opt)
	require.NoError(t, err)
	d, ok := got.(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("1.10")))
}

func TestScalarEnum(t *testing.T) {
	opt := option.New("color", option.ScalarShape, option.EnumKind)
	opt.EnumValues = []string{"red", "green"}
	got, err := Scalar("red", opt)
	require.NoError(t, err)
	assert.Equal(t, "red", got)

	_, err = Scalar("blue", opt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrorConversion))
	assert.Equal(t, `Wrong value for option 'color', valid values are ["red" "green"]`, err.Error())

	// Case sensitive.
	_, err = Scalar("Red", opt)
	require.Error(t, err)
}

func TestScalarErrors(t *testing.T) {
	cases := []struct {
		kind option.Kind
		raw  string
		msg  string
	}{
		{option.BoolKind, "yes", "Can't convert string to bool: option 'x', value 'yes'"},
		{option.IntKind, "1.5", "Can't convert string to int: option 'x', value '1.5'"},
		{option.Int64Kind, "abc", "Can't convert string to int64: option 'x', value 'abc'"},
		{option.Float64Kind, "abc", "Can't convert string to float64: option 'x', value 'abc'"},
		{option.DecimalKind, "abc", "Can't convert string to decimal: option 'x', value 'abc'"},
	}
	for _, c := range cases {
		t.Run(c.msg, func(t *testing.T) {
			opt := option.New("x", option.ScalarShape, c.kind)
			_, err := Scalar(c.raw, opt)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrorConversion))
			assert.Equal(t, c.msg, err.Error())

			var convErr *ConversionError
			require.True(t, errors.As(err, &convErr))
			assert.Equal(t, "x", convErr.Option)
			assert.Equal(t, c.raw, convErr.Raw)
			assert.Equal(t, c.kind.String(), convErr.Target)
		})
	}
}

func TestScalarConverter(t *testing.T) {
	opt := option.New("x", option.ScalarShape, option.StringKind)
	opt.SetConverter(func(value string) (interface{}, error) {
		return len(value), nil
	})
	got, err := Scalar("abc", opt)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	opt.SetConverter(func(value string) (interface{}, error) {
		return nil, fmt.Errorf("nope")
	})
	_, err = Scalar("abc", opt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrorConversion))
}

func TestList(t *testing.T) {
	opt := option.New("l", option.ListShape, option.IntKind)
	got, err := List([]string{"3", "1", "2"}, opt)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{3, 1, 2}, got)

	_, err = List([]string{"1", "x"}, opt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrorConversion))
}

func TestMap(t *testing.T) {
	opt := option.New("D", option.MapShape, option.StringKind)

	t.Run("pairs keep insertion order", func(t *testing.T) {
		m, err := Map([]string{"b=2", "a=1"}, opt)
		require.NoError(t, err)
		require.Equal(t, 2, m.Len())
		keys := []interface{}{}
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			keys = append(keys, pair.Key)
		}
		assert.Equal(t, []interface{}{"b", "a"}, keys)
	})

	t.Run("duplicate keys last write wins", func(t *testing.T) {
		m, err := Map([]string{"a=1", "b=2", "a=3"}, opt)
		require.NoError(t, err)
		require.Equal(t, 2, m.Len())
		v, ok := m.Get("a")
		require.True(t, ok)
		assert.Equal(t, "3", v)
		assert.Equal(t, "a", m.Oldest().Key)
	})

	t.Run("alternating values", func(t *testing.T) {
		m, err := Map([]string{"key", "value", "k2", "v2"}, opt)
		require.NoError(t, err)
		require.Equal(t, 2, m.Len())
		v, ok := m.Get("key")
		require.True(t, ok)
		assert.Equal(t, "value", v)
	})

	t.Run("dangling key", func(t *testing.T) {
		_, err := Map([]string{"a=1", "lone"}, opt)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrorConversion))
		assert.Equal(t, "Argument error for option 'D': should be of type 'key=value'", err.Error())
	})

	t.Run("value holding equals", func(t *testing.T) {
		m, err := Map([]string{"a=1=2"}, opt)
		require.NoError(t, err)
		v, ok := m.Get("a")
		require.True(t, ok)
		assert.Equal(t, "1=2", v)
	})
}

func TestMapTypedKinds(t *testing.T) {
	opt := option.New("m", option.MapShape, option.StringKind)
	opt.SetKeyKind(option.IntKind)
	opt.SetValueKind(option.Float64Kind)

	m, err := Map([]string{"1=1.5"}, opt)
	require.NoError(t, err)
	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, 1.5, v)

	_, err = Map([]string{"x=1.5"}, opt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrorConversion))

	_, err = Map([]string{"1=x"}, opt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrorConversion))
}
