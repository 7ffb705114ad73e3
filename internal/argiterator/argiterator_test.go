// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argiterator

import (
	"reflect"
	"testing"
)

func TestIterator(t *testing.T) {
	it := New([]string{"a", "b", "c"})
	if it.Value() != "" {
		t.Errorf("value before Next should be empty")
	}
	if !it.ExistsNext() {
		t.Errorf("expected more data")
	}
	if v, ok := it.PeekNextValue(); !ok || v != "a" {
		t.Errorf("got %q %v", v, ok)
	}

	out := []string{}
	for it.Next() {
		out = append(out, it.Value())
	}
	if !reflect.DeepEqual(out, []string{"a", "b", "c"}) {
		t.Errorf("got %v", out)
	}
	if it.ExistsNext() {
		t.Errorf("expected no more data")
	}
	if _, ok := it.PeekNextValue(); ok {
		t.Errorf("peek past the end should not be ok")
	}
	if it.Next() {
		t.Errorf("Next past the end should be false")
	}
	if it.Value() != "" {
		t.Errorf("value past the end should be empty")
	}
}

func TestRemaining(t *testing.T) {
	it := New([]string{"a", "b", "c"})
	it.Next()
	if !reflect.DeepEqual(it.Remaining(), []string{"b", "c"}) {
		t.Errorf("wrong remaining")
	}
	if it.Next() {
		t.Errorf("Remaining should consume the iterator")
	}

	it = New([]string{})
	if !reflect.DeepEqual(it.Remaining(), []string{}) {
		t.Errorf("wrong remaining on empty input")
	}
}
