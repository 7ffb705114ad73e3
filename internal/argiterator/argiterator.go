// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argiterator - iterator over the argument vector that allows peeking
// at the next token before deciding to consume it.
package argiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds an Iterator over the given argument vector.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Next - moves the index forward and returns a bool to indicate if there is another token.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// Value - returns the token at the current index or an empty string if the
// input has been fully read.
func (a *Iterator) Value() string {
	if a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next token and indicates whether or not it is valid.
func (a *Iterator) PeekNextValue() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// Remaining - Consumes and returns all tokens after the current index.
func (a *Iterator) Remaining() []string {
	out := []string{}
	for a.Next() {
		out = append(out, a.Value())
	}
	return out
}
