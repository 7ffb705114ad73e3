// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package clibuilder

import (
	"regexp"
	"strings"
)

// 1: leading dashes
// 2: option
// 3: =arg
var isOptionRegex = regexp.MustCompile(`^(--?)([^=]+)(.*?)$`)

// tokenClass - classification of one raw cli token.
type tokenClass int

const (
	classText       tokenClass = iota // not an option, goes to values or remainder
	classTerminator                   // the literal --
	classLong                         // --name or --name=value
	classShort                        // -a, -ab bundle or -avalue
)

// token - one classified cli token.
//
// For classLong, Name is the long name and Arg the attached value when HasArg
// is set. For classShort, Name holds the characters after the dash and the
// attached value handling happens during the bundle scan.
type token struct {
	Verbatim string
	Class    tokenClass
	Name     string
	Arg      string
	HasArg   bool
}

// classify - Breaks down one cli token.
//
// A lone '-' is not an option, it is commonly used to mean stdin and always
// passes through. The terminator '--' is the caller's responsibility.
func classify(s string) token {
	switch s {
	case "--":
		return token{Verbatim: s, Class: classTerminator}
	case "-":
		return token{Verbatim: s, Class: classText}
	}
	match := isOptionRegex.FindStringSubmatch(s)
	if len(match) == 0 {
		return token{Verbatim: s, Class: classText}
	}
	t := token{Verbatim: s, Name: match[2]}
	if strings.HasPrefix(match[3], "=") {
		t.HasArg = true
		t.Arg = strings.TrimPrefix(match[3], "=")
	}
	if match[1] == "--" {
		t.Class = classLong
	} else {
		t.Class = classShort
	}
	return t
}
