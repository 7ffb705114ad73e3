// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - user facing strings.
// Make them public so they can be overridden if needed.
package text

// ErrorAmbiguousOption - Error raised when a long option prefix matches more than one option.
// It has two placeholders, the argument as given and the list of candidates.
var ErrorAmbiguousOption = "Ambiguous option '%s' matches %q"

// ErrorConvertToInt - Error raised when a value can't be converted to an int.
// It has two string placeholders, the option name and the value.
var ErrorConvertToInt = "Can't convert string to int: option '%s', value '%s'"

// ErrorConvertToInt64 - Error raised when a value can't be converted to an int64.
var ErrorConvertToInt64 = "Can't convert string to int64: option '%s', value '%s'"

// ErrorConvertToFloat64 - Error raised when a value can't be converted to a float64.
var ErrorConvertToFloat64 = "Can't convert string to float64: option '%s', value '%s'"

// ErrorConvertToDecimal - Error raised when a value can't be converted to a decimal.
var ErrorConvertToDecimal = "Can't convert string to decimal: option '%s', value '%s'"

// ErrorConvertToBool - Error raised when a value can't be converted to a bool.
var ErrorConvertToBool = "Can't convert string to bool: option '%s', value '%s'"

// ErrorNotInEnum - Error raised when a value doesn't match any of the declared enum values.
var ErrorNotInEnum = "Wrong value for option '%s', valid values are %q"

// ErrorArgumentIsNotKeyValue - Error raised when a map option value is not of key=value type.
var ErrorArgumentIsNotKeyValue = "Argument error for option '%s': should be of type 'key=value'"

// ErrorMissingArgument - Error raised when the option arity can't be satisfied.
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorMissingArgument = "Missing argument for option '%s'!"

// ErrorArgumentWithDash - Error raised when the option arity can't be satisfied
// because the next argument looks like an option (starts with '-').
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorArgumentWithDash = "Missing argument for option '%s'!\n" +
	"If passing arguments that start with '-' use --option=-argument"

// ErrorMissingRequiredOption - Error raised when a required option is not provided.
var ErrorMissingRequiredOption = "Missing required option '%s'!"

// ErrorDuplicateOption - Error raised when registering an option whose name or
// alias is already taken.
var ErrorDuplicateOption = "Option/Alias '%s' is already defined in option '%s'"

// ErrorUnsupportedPlaceholder - Error raised when the usage template references
// an unknown placeholder.
var ErrorUnsupportedPlaceholder = "Unsupported placeholder '{%s}' in usage template"

// MessageOnUnknown - Error raised when an unknown option is passed.
var MessageOnUnknown = "Unknown option '%s'"

// WarningOnUnknown - Warning message when an unknown option is passed and the
// unknown mode is set to Warn.
var WarningOnUnknown = "WARNING: " + MessageOnUnknown

// HelpUsageHeader - Header for the usage section of the help.
var HelpUsageHeader = "usage"

// HelpOptionsHeader - Default heading for the option table of the help.
var HelpOptionsHeader = "Options"

// HelpRequiredOptionsHeader - Heading for the required option table of the help.
var HelpRequiredOptionsHeader = "Required options"
