// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package coerce - converts raw string values into their declared kinds.
package coerce

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/TayoO/groovy/internal/option"
	"github.com/TayoO/groovy/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ErrorConversion - Sentinel wrapped by every ConversionError.
var ErrorConversion = errors.New("")

// ConversionError - a raw value that couldn't be converted to the target kind.
type ConversionError struct {
	Option string // option name the value was given to
	Raw    string // offending raw value
	Target string // target kind name
	msg    string
}

func (e *ConversionError) Error() string {
	return e.msg
}

func (e *ConversionError) Unwrap() error {
	return ErrorConversion
}

func conversionError(opt *option.Option, raw string, target option.Kind, format string) error {
	return &ConversionError{
		Option: opt.Name,
		Raw:    raw,
		Target: target.String(),
		msg:    fmt.Sprintf(format, opt.Name, raw),
	}
}

// Scalar - Coerces one raw value using the option's converter or its declared
// scalar kind.
func Scalar(raw string, opt *option.Option) (interface{}, error) {
	if opt.Converter != nil {
		v, err := opt.Converter(raw)
		if err != nil {
			return nil, &ConversionError{
				Option: opt.Name,
				Raw:    raw,
				Target: opt.Kind.String(),
				msg:    fmt.Sprintf("converter error for option '%s', value '%s': %s", opt.Name, raw, err),
			}
		}
		return v, nil
	}
	return kindValue(raw, opt.Kind, opt)
}

func kindValue(raw string, kind option.Kind, opt *option.Option) (interface{}, error) {
	Logger.Printf("name: %s, kind: %s, raw: %s\n", opt.Name, kind, raw)
	switch kind {
	case option.BoolKind:
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, conversionError(opt, raw, kind, text.ErrorConvertToBool)
	case option.IntKind:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return nil, conversionError(opt, raw, kind, text.ErrorConvertToInt)
		}
		return i, nil
	case option.Int64Kind:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, conversionError(opt, raw, kind, text.ErrorConvertToInt64)
		}
		return i, nil
	case option.Float64Kind:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, conversionError(opt, raw, kind, text.ErrorConvertToFloat64)
		}
		return f, nil
	case option.DecimalKind:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, conversionError(opt, raw, kind, text.ErrorConvertToDecimal)
		}
		return d, nil
	case option.EnumKind:
		// Case sensitive match against the declared symbolic names.
		for _, e := range opt.EnumValues {
			if e == raw {
				return raw, nil
			}
		}
		return nil, &ConversionError{
			Option: opt.Name,
			Raw:    raw,
			Target: kind.String(),
			msg:    fmt.Sprintf(text.ErrorNotInEnum, opt.Name, opt.EnumValues),
		}
	default: // StringKind, FileKind
		// A file value wraps the raw string, no existence check.
		return raw, nil
	}
}

// List - Coerces a raw value list element wise, preserving order.
func List(raw []string, opt *option.Option) ([]interface{}, error) {
	list := make([]interface{}, 0, len(raw))
	for _, e := range raw {
		v, err := Scalar(e, opt)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// Map - Coerces raw values into an insertion ordered map.
//
// Values shaped as `key=value` contribute one pair each; values without a `=`
// are consumed as alternating key/value pairs, which is how fixed arity two
// value occurrences arrive. Duplicate keys: last write wins while the first
// insertion keeps its position.
func Map(raw []string, opt *option.Option) (*orderedmap.OrderedMap, error) {
	m := orderedmap.New()
	for i := 0; i < len(raw); i++ {
		var rawKey, rawValue string
		if k, v, ok := strings.Cut(raw[i], "="); ok {
			rawKey, rawValue = k, v
		} else {
			if i+1 >= len(raw) {
				return nil, &ConversionError{
					Option: opt.Name,
					Raw:    raw[i],
					Target: "key=value",
					msg:    fmt.Sprintf(text.ErrorArgumentIsNotKeyValue, opt.Name),
				}
			}
			rawKey, rawValue = raw[i], raw[i+1]
			i++
		}
		key, err := kindValue(rawKey, opt.KeyKind, opt)
		if err != nil {
			return nil, err
		}
		value, err := kindValue(rawValue, opt.ValueKind, opt)
		if err != nil {
			return nil, err
		}
		m.Set(key, value)
	}
	return m, nil
}
