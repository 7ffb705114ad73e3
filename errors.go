// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package clibuilder

import (
	"errors"

	"github.com/TayoO/groovy/internal/coerce"
)

// The sentinels carry no text of their own, the user facing text from the
// text package is prepended at the error site. Match with errors.Is.

// ErrorDuplicateOption - Indicates a short name, long name or alias collision
// at registration time.
var ErrorDuplicateOption = errors.New("")

// ErrorUnknownOption - Indicates an option that doesn't match any descriptor.
var ErrorUnknownOption = errors.New("")

// ErrorAmbiguousOption - Indicates a long option prefix matching more than one
// descriptor.
var ErrorAmbiguousOption = errors.New("")

// ErrorMissingArgument - Indicates the option's arity could not be satisfied
// from the remaining tokens.
var ErrorMissingArgument = errors.New("")

// ErrorMissingRequiredOption - Indicates a required option was absent from the
// input.
var ErrorMissingRequiredOption = errors.New("")

// ErrorConversion - Indicates a raw value incompatible with the target kind or
// a converter failure. The full error is a *coerce.ConversionError carrying
// the offending raw value and the target kind name.
var ErrorConversion = coerce.ErrorConversion

// ErrorBadUsageTemplate - Indicates an unresolvable placeholder in the usage
// template at rendering time.
var ErrorBadUsageTemplate = errors.New("")

// ConversionError - Detail of a coercion failure: the option name, the
// offending raw value and the target kind name. Retrieve with errors.As.
type ConversionError = coerce.ConversionError
