// Copyright 2024 The Goldscript Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package script

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Script is the parsed form of a golden-script file: a sequence of blocks,
// each an input section of commands and the literal text expected of their
// output.
type Script struct {
	Blocks []*Block
}

// A Block pairs one or more input Commands with the expected-output text
// that following them should produce.
type Block struct {
	Commands []*Command
	Expected string
}

// Arg is one argument to a Command: a positional value, or a key/value pair
// when Key is non-nil. Values have already had escapes decoded.
type Arg struct {
	Key   *string
	Value string
}

// Positional reports whether a is a positional (unkeyed) argument.
func (a Arg) Positional() bool { return a.Key == nil }

// A Command is one parsed input line: a name, its ordered arguments, and
// the modifiers (prefix, tags, silencing, fail-expectation) that precede it.
type Command struct {
	Prefix *string
	Name   string
	Args   []Arg
	Tags   []string
	Silent bool
	Fail   bool
	// Raw is true when the command was written using the ">" raw form, in
	// which case Name holds the remainder of the line verbatim and Prefix
	// and Args are always unset.
	Raw bool
	Pos Position
}

// LineNumber returns the 1's based source line the command begins on.
func (c *Command) LineNumber() int { return c.Pos.Line }

// HasTag reports whether c carries tag t.
func (c *Command) HasTag(t string) bool {
	for _, ct := range c.Tags {
		if ct == t {
			return true
		}
	}
	return false
}

// Internal reports whether c names a reserved, engine-handled command.
func (c *Command) Internal() bool {
	return strings.HasPrefix(c.Name, "_")
}

// Format renders c back to golden-script source syntax. It is the single
// routine relied on by both Generate (to rewrite a script's input section)
// and the parser's round-trip tests (format, then re-parse, then compare),
// so the two never drift apart.
func (c *Command) Format(opts Options) string {
	var b strings.Builder
	if len(c.Tags) > 0 {
		tags := append([]string(nil), c.Tags...)
		if !opts.PreserveTagOrder {
			sort.Strings(tags)
		}
		b.WriteByte('[')
		for i, t := range tags {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(quoteIfNeeded(t))
		}
		b.WriteByte(']')
		b.WriteByte(' ')
	}
	if c.Fail {
		b.WriteString("! ")
	}
	if c.Silent {
		b.WriteByte('(')
	}
	if c.Raw {
		// A raw-form command's Name already holds the literal remainder of
		// the line; it carries no prefix or args.
		b.WriteString("> ")
		b.WriteString(c.Name)
	} else {
		if c.Prefix != nil {
			b.WriteString(quoteIfNeeded(*c.Prefix))
			b.WriteByte(':')
			b.WriteByte(' ')
		}
		b.WriteString(quoteIfNeeded(c.Name))
		for _, a := range c.Args {
			b.WriteByte(' ')
			if a.Key != nil {
				b.WriteString(quoteIfNeeded(*a.Key))
				b.WriteByte('=')
			}
			b.WriteString(quoteIfNeeded(a.Value))
		}
	}
	if c.Silent {
		b.WriteByte(')')
	}
	return b.String()
}

// quoteIfNeeded returns s unquoted if it lexes back to itself as a bare
// identifier, and a double-quoted, escaped form otherwise.
func quoteIfNeeded(s string) string {
	if s != "" && isBareIdent(s) {
		return s
	}
	return quoteString(s)
}

// quoteString double-quotes s using only the escape forms readEscape (§3)
// accepts: \\ \" \n \r \t \0, \xHH for other non-printable bytes below
// U+0080, and \u{...} for non-printable runes above it. strconv.Quote would
// reach for Go's \uXXXX/\UXXXXXXXX forms, which this engine's lexer doesn't
// understand, breaking the format-then-reparse round trip for such runes.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			switch {
			case r < utf8.RuneSelf && (r < 0x20 || r == 0x7f):
				fmt.Fprintf(&b, `\x%02x`, r)
			case r < utf8.RuneSelf:
				b.WriteRune(r)
			case !unicode.IsPrint(r):
				fmt.Fprintf(&b, `\u{%x}`, r)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func isBareIdent(s string) bool {
	for _, r := range s {
		if !(isIdentRune(r)) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune(identSyms, r):
		return true
	}
	return false
}
