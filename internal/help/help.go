// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - renders the usage message from the option registry.
//
// The renderer is a pure function of its inputs: the registry's descriptors
// plus the free text metadata held by the caller.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/TayoO/groovy/internal/option"
	"github.com/TayoO/groovy/text"
)

// Padding - Left indentation of the option table.
var Padding = 4

// DefaultWidth - Total width the output is wrapped to when the caller passes 0.
var DefaultWidth = 80

// shortColumn - Width of the short name column, "-a, " or blanks for
// long-only options so the long names align.
const shortColumn = 4

// Synopsis - Returns the usage line for the given options.
//
// Zero arity options with a short name are grouped in one bracket, value
// taking options render with their placeholder, required options render
// without brackets. Continuation lines align under the first option.
func Synopsis(program string, options []*option.Option, sorted bool, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	options = copyList(options, sorted)

	entries := []string{}
	flags := ""
	for _, opt := range options {
		short := opt.Short()
		if opt.Arity == option.Zero && !opt.IsRequired && len(short) > 0 {
			flags += short[0]
			continue
		}
		entries = append(entries, optSynopsis(opt))
	}
	if flags != "" {
		entries = append([]string{"[-" + flags + "]"}, entries...)
	}

	prefix := text.HelpUsageHeader + ": " + program
	line := prefix
	out := ""
	for _, e := range entries {
		if len(line)+1+len(e) > width {
			out += line + "\n"
			line = strings.Repeat(" ", len(prefix)) + " " + e
		} else {
			line += " " + e
		}
	}
	out += line
	return out + "\n"
}

func optSynopsis(opt *option.Option) string {
	name := ""
	if short := opt.Short(); len(short) > 0 {
		name = "-" + short[0]
	} else if long := opt.Long(); len(long) > 0 {
		name = "--" + long[0]
	}
	txt := name
	if opt.TakesValue() {
		txt += fmt.Sprintf(" <%s>", opt.HelpArgName)
	}
	if opt.Arity == option.Variable || (opt.Arity == option.Fixed && opt.NArgs > 1) {
		txt += "..."
	}
	if !opt.IsRequired {
		txt = "[" + txt + "]"
	}
	return txt
}

// Section - Returns a free text block with an optional heading, wrapped to
// the given width.
func Section(heading, body string, width int) string {
	if body == "" {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}
	out := ""
	if heading != "" {
		out += heading + ":\n"
	}
	out += wordwrap.WrapString(body, uint(width))
	return out + "\n"
}

// OptionList - Returns the two column option table.
//
// The left column holds the short and long names, the right column holds the
// word wrapped description. Long-only options render with leading spaces in
// place of the absent short column to preserve alignment. Required options
// render under their own heading first.
func OptionList(options []*option.Option, sorted bool, width int) string {
	if len(options) == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}
	options = copyList(options, sorted)

	factor := 0
	for _, opt := range options {
		if l := len(label(opt)); l > factor {
			factor = l
		}
	}

	normalOptions := []*option.Option{}
	requiredOptions := []*option.Option{}
	for _, opt := range options {
		if opt.IsRequired {
			requiredOptions = append(requiredOptions, opt)
		} else {
			normalOptions = append(normalOptions, opt)
		}
	}

	helpString := func(opt *option.Option) string {
		txt := strings.Repeat(" ", Padding) + pad(label(opt), factor)
		description := opt.Description
		if opt.HasDefault {
			if description != "" {
				description += " "
			}
			description += fmt.Sprintf("(default: %s)", opt.DefaultStr)
		}
		if description == "" {
			return strings.TrimRight(txt, " ") + "\n\n"
		}
		// Continuation lines align under the start of the description column.
		indent := strings.Repeat(" ", Padding+factor+Padding)
		avail := width - len(indent)
		if avail < 10 {
			avail = 10
		}
		wrapped := wordwrap.WrapString(description, uint(avail))
		txt += strings.Repeat(" ", Padding)
		txt += strings.ReplaceAll(wrapped, "\n", "\n"+indent)
		return txt + "\n\n"
	}

	out := ""
	if len(requiredOptions) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpRequiredOptionsHeader)
		for _, opt := range requiredOptions {
			out += helpString(opt)
		}
	}
	if len(normalOptions) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpOptionsHeader)
		for _, opt := range normalOptions {
			out += helpString(opt)
		}
	}
	return out
}

// label - Returns the left column text for one option.
func label(opt *option.Option) string {
	short := opt.Short()
	long := opt.Long()
	out := ""
	if len(short) > 0 {
		shorts := []string{}
		for _, s := range short {
			shorts = append(shorts, "-"+s)
		}
		out = strings.Join(shorts, ", ")
	}
	if len(long) > 0 {
		if out != "" {
			out += ", "
		} else {
			out = strings.Repeat(" ", shortColumn)
		}
		longs := []string{}
		for _, l := range long {
			longs = append(longs, "--"+l)
		}
		out += strings.Join(longs, ", ")
	}
	if opt.TakesValue() {
		out += fmt.Sprintf(" <%s>", opt.HelpArgName)
	}
	if opt.Arity == option.Variable || (opt.Arity == option.Fixed && opt.NArgs > 1) {
		out += "..."
	}
	return out
}

// copyList - Copies the descriptor list so sorting never mutates the
// registry's declaration order.
func copyList(options []*option.Option, sorted bool) []*option.Option {
	list := make([]*option.Option, len(options))
	copy(list, options)
	if sorted {
		option.Sort(list)
	}
	return list
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
