// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"reflect"
	"testing"
)

func TestNewDerivations(t *testing.T) {
	cases := []struct {
		name  string
		opt   *Option
		arity Arity
		nargs int
	}{
		{"flag", New("a", ScalarShape, BoolKind), Zero, 0},
		{"string", New("s", ScalarShape, StringKind), One, 0},
		{"int", New("i", ScalarShape, IntKind), One, 0},
		{"list", New("l", ListShape, StringKind), Fixed, 1},
		{"map", New("m", MapShape, StringKind), One, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.opt.Arity != c.arity || c.opt.NArgs != c.nargs {
				t.Errorf("got arity %d nargs %d, want %d %d", c.opt.Arity, c.opt.NArgs, c.arity, c.nargs)
			}
		})
	}
	if New("m", MapShape, StringKind).HelpArgName != "key=value" {
		t.Errorf("wrong map placeholder")
	}
}

func TestValidate(t *testing.T) {
	if err := New("", ScalarShape, StringKind).Validate(); err == nil {
		t.Errorf("empty name did not error")
	}
	opt := New("l", ListShape, StringKind)
	opt.NArgs = 0
	if err := opt.Validate(); err == nil {
		t.Errorf("fixed arity with no values did not error")
	}
	opt = New("a", ScalarShape, BoolKind)
	opt.SetOptional()
	if err := opt.Validate(); err == nil {
		t.Errorf("optional flag did not error")
	}
	opt = New("e", ScalarShape, EnumKind)
	if err := opt.Validate(); err == nil {
		t.Errorf("enum without values did not error")
	}
	opt.EnumValues = []string{"x"}
	if err := opt.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShortLong(t *testing.T) {
	opt := New("o", ScalarShape, StringKind)
	opt.SetAlias("output", "out", "O")
	if !reflect.DeepEqual(opt.Short(), []string{"o", "O"}) {
		t.Errorf("got %v", opt.Short())
	}
	if !reflect.DeepEqual(opt.Long(), []string{"output", "out"}) {
		t.Errorf("got %v", opt.Long())
	}
}

func TestSynopsis(t *testing.T) {
	opt := New("o", ScalarShape, StringKind)
	opt.SetAlias("output")
	if opt.HelpSynopsis != "-o, --output <string>" {
		t.Errorf("got %q", opt.HelpSynopsis)
	}
	opt.SetHelpArgName("file")
	if opt.HelpSynopsis != "-o, --output <file>" {
		t.Errorf("got %q", opt.HelpSynopsis)
	}

	opt = New("l", ListShape, IntKind)
	opt.SetNArgs(2)
	if opt.HelpSynopsis != "-l <int>..." {
		t.Errorf("got %q", opt.HelpSynopsis)
	}

	opt = New("a", ScalarShape, BoolKind)
	if opt.HelpSynopsis != "-a" {
		t.Errorf("got %q", opt.HelpSynopsis)
	}
}

func TestSetNArgs(t *testing.T) {
	opt := New("l", ListShape, StringKind)
	opt.SetNArgs(3)
	if opt.Arity != Fixed || opt.NArgs != 3 {
		t.Errorf("got %d %d", opt.Arity, opt.NArgs)
	}
	opt.SetNArgs(Unlimited)
	if opt.Arity != Variable {
		t.Errorf("got %d", opt.Arity)
	}
}

func TestSplit(t *testing.T) {
	opt := New("b", ListShape, IntKind)
	if !reflect.DeepEqual(opt.Split("1,2"), []string{"1,2"}) {
		t.Errorf("split without separator should not split")
	}
	opt.SetSeparator(',')
	if !reflect.DeepEqual(opt.Split("1,2"), []string{"1", "2"}) {
		t.Errorf("got %v", opt.Split("1,2"))
	}
	if !reflect.DeepEqual(opt.Split("12"), []string{"12"}) {
		t.Errorf("got %v", opt.Split("12"))
	}
}

func TestSort(t *testing.T) {
	list := []*Option{
		New("zeta", ScalarShape, StringKind),
		New("alpha", ScalarShape, StringKind),
	}
	Sort(list)
	if list[0].Name != "alpha" || list[1].Name != "zeta" {
		t.Errorf("got %s %s", list[0].Name, list[1].Name)
	}
}
