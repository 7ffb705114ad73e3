// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package clibuilder

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		tok  token
	}{
		{"empty", "", token{Verbatim: "", Class: classText}},
		{"text", "opt", token{Verbatim: "opt", Class: classText}},
		{"lone dash", "-", token{Verbatim: "-", Class: classText}},
		{"terminator", "--", token{Verbatim: "--", Class: classTerminator}},

		{"long", "--opt", token{Verbatim: "--opt", Class: classLong, Name: "opt"}},
		{"long with arg", "--opt=arg", token{Verbatim: "--opt=arg", Class: classLong, Name: "opt", Arg: "arg", HasArg: true}},
		{"long with empty arg", "--opt=", token{Verbatim: "--opt=", Class: classLong, Name: "opt", Arg: "", HasArg: true}},
		{"long with arg holding equals", "--opt=a=b", token{Verbatim: "--opt=a=b", Class: classLong, Name: "opt", Arg: "a=b", HasArg: true}},

		{"short", "-o", token{Verbatim: "-o", Class: classShort, Name: "o"}},
		{"short bundle", "-opt", token{Verbatim: "-opt", Class: classShort, Name: "opt"}},
		{"short with arg", "-opt=arg", token{Verbatim: "-opt=arg", Class: classShort, Name: "opt", Arg: "arg", HasArg: true}},
		{"short with arg holding equals", "-D=k=v", token{Verbatim: "-D=k=v", Class: classShort, Name: "D", Arg: "k=v", HasArg: true}},
	}
	for _, c := range cases {
		t.Run(c.name+" "+c.in, func(t *testing.T) {
			got := classify(c.in)
			if !reflect.DeepEqual(got, c.tok) {
				t.Errorf("classify(%q) == %#v, want %#v", c.in, got, c.tok)
			}
		})
	}
}
