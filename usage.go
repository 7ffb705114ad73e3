// This file is part of clibuilder.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package clibuilder

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/TayoO/groovy/internal/help"
	"github.com/TayoO/groovy/text"
)

// HelpSection - Indicates what portion of the help to return.
type HelpSection int

// Help Output Types
const (
	HelpUsage HelpSection = iota // the usage/synopsis line plus the description
	HelpHeader
	HelpOptionList
	HelpFooter
)

var placeholderRegex = regexp.MustCompile(`\{([A-Za-z]+)\}`)

// Help - Returns the automated help text.
// Without arguments the full help is returned, otherwise only the sections
// given, in the given order.
//
// An error is only possible when a custom usage template references an
// unsupported placeholder and the HelpUsage section is requested.
func (b *Builder) Help(sections ...HelpSection) (string, error) {
	r := b.reg
	if len(sections) == 0 {
		sections = []HelpSection{HelpUsage, HelpHeader, HelpOptionList, HelpFooter}
	}
	width := r.width
	if width <= 0 {
		width = help.DefaultWidth
	}
	parts := []string{}
	for _, section := range sections {
		switch section {
		case HelpUsage:
			line, err := r.usageLine(width)
			if err != nil {
				return "", err
			}
			parts = append(parts, line)
			parts = append(parts, help.Section("", r.description, width))
		case HelpHeader:
			parts = append(parts, help.Section(r.headerHeading, r.header, width))
		case HelpOptionList:
			parts = append(parts, help.OptionList(r.order, r.sortOptions, width))
		case HelpFooter:
			parts = append(parts, help.Section(r.footerHeading, r.footer, width))
		}
	}
	// One blank line between sections, one trailing newline.
	out := []string{}
	for _, p := range parts {
		p = strings.TrimRight(p, "\n")
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "", nil
	}
	return strings.Join(out, "\n\n") + "\n", nil
}

// usageLine - Returns the synopsis, either generated from the declared
// options or expanded from the custom template.
func (r *registry) usageLine(width int) (string, error) {
	if r.usageTemplate == "" {
		return help.Synopsis(r.name, r.order, r.sortOptions, width), nil
	}
	var badPlaceholder string
	expanded := placeholderRegex.ReplaceAllStringFunc(r.usageTemplate, func(m string) string {
		word := strings.Trim(m, "{}")
		switch word {
		case "program":
			return r.name
		default:
			if badPlaceholder == "" {
				badPlaceholder = word
			}
			return m
		}
	})
	if badPlaceholder != "" {
		return "", fmt.Errorf(text.ErrorUnsupportedPlaceholder+"%w", badPlaceholder, ErrorBadUsageTemplate)
	}
	return text.HelpUsageHeader + ": " + expanded + "\n", nil
}

// Fprint - Writes the automated help to the given writer.
// For example:
//
//	_ = opt.Fprint(os.Stderr)
func (b *Builder) Fprint(w io.Writer, sections ...HelpSection) error {
	s, err := b.Help(sections...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, s)
	return err
}
