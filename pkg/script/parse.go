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

// This file implements Parse, which turns golden-script source into a
// Script: a sequence of Blocks, each a run of input Commands followed by a
// literal expected-output section.

import (
	"bytes"
	"fmt"
	"strings"
)

// parser holds the state needed to parse one script.
type parser struct {
	lex    *lexer
	errout *bytes.Buffer
	opts   Options
	pushed []*token
}

func newParser(input, file string, opts Options) *parser {
	errout := &bytes.Buffer{}
	lex := newLexer(input, file, opts.MaxErrors)
	lex.debug = opts.Debug
	lex.errout = errout
	return &parser{lex: lex, errout: errout, opts: opts}
}

// push puts a token back; it will be the next one returned by next.
func (p *parser) push(t *token) {
	p.pushed = append(p.pushed, t)
}

func (p *parser) pop() *token {
	if n := len(p.pushed); n > 0 {
		n--
		t := p.pushed[n]
		p.pushed = p.pushed[:n]
		return t
	}
	return nil
}

// next returns the next token, skipping over lex errors (which have already
// been recorded into p.errout by the lexer).
func (p *parser) next() *token {
	if t := p.pop(); t != nil {
		return t
	}
	for {
		t := p.lex.NextToken()
		if t.Code() != tError {
			return t
		}
	}
}

// errorf records a parse error at t's position, or at the lexer's current
// position when t is nil (end of input).
func (p *parser) errorf(t *token, format string, v ...interface{}) {
	pos := Position{File: p.lex.file, Line: p.lex.line, Col: p.lex.col + 1}
	if t != nil {
		pos = t.Pos
	}
	fmt.Fprintf(p.errout, "%s: ", pos)
	fmt.Fprintf(p.errout, format, v...)
	p.errout.WriteByte('\n')
}

// Parse parses input (golden-script source) read from the source named
// file (used only in position messages) and returns the resulting Script.
// If one or more errors are encountered, a *Error of kind ParseError is
// returned instead, with every error collected into its message.
func Parse(input, file string, opts Options) (*Script, error) {
	p := newParser(input, file, opts)

	var blocks []*Block
	for {
		t := p.next()
		switch t.Code() {
		case tNewline:
			continue
		case tEOF:
			return p.finish(blocks)
		default:
			p.push(t)
		}

		b, ok := p.parseBlock()
		if !ok {
			return p.finish(blocks)
		}
		blocks = append(blocks, b)
	}
}

func (p *parser) finish(blocks []*Block) (*Script, error) {
	if p.errout.Len() > 0 {
		return nil, &Error{
			Kind:    KindParseError,
			Message: strings.TrimSpace(p.errout.String()),
		}
	}
	return &Script{Blocks: blocks}, nil
}

// parseBlock parses one input-section-plus-expected-output block, stopping
// right after consuming the expected section's terminating blank line (or
// EOF).
func (p *parser) parseBlock() (*Block, bool) {
	var cmds []*Command
	for {
		t := p.next()
		switch t.Code() {
		case tNewline:
			continue
		case tEOF:
			p.errorf(t, "unexpected end of file: missing \"---\" separator")
			return nil, false
		case tSep:
			if len(cmds) == 0 {
				p.errorf(t, "block has no input commands before \"---\"")
				return nil, false
			}
			expected := p.lex.readRawBlock()
			return &Block{Commands: cmds, Expected: expected}, true
		default:
			p.push(t)
			cmd, ok := p.parseCommandLine()
			if !ok {
				return nil, false
			}
			cmds = append(cmds, cmd)
		}
	}
}

// parseCommandLine parses one input line into a Command, consuming tokens
// up to (but not including) the line's terminating tNewline/tEOF/tSep.
func (p *parser) parseCommandLine() (*Command, bool) {
	var tags []string
	var fail bool
	var pos Position
	havePos := false

	// collectModifiers consumes any run of "!" and "[tag,...]" tokens,
	// pushing back and returning once neither is next. It implements the
	// grammar's "! line" recursion and the tags production together, since
	// both may appear, in either order, before the command itself — and,
	// per spec, "!" may additionally appear just inside an opening "(".
	collectModifiers := func() bool {
		for {
			t := p.next()
			if !havePos {
				pos, havePos = t.Pos, true
			}
			switch t.Code() {
			case code('!'):
				fail = true
			case code('['):
				p.push(t)
				tg, ok := p.parseTagList()
				if !ok {
					return false
				}
				tags = append(tags, tg...)
			default:
				p.push(t)
				return true
			}
		}
	}

	if !collectModifiers() {
		return nil, false
	}

	silent := false
	t := p.next()
	if t.Code() == code('(') {
		silent = true
		if !collectModifiers() {
			return nil, false
		}
	} else {
		p.push(t)
	}

	cmd, ok := p.parseCommandBody()
	if !ok {
		return nil, false
	}
	cmd.Tags = dedupTags(tags)
	cmd.Fail = fail
	cmd.Silent = silent
	cmd.Pos = pos

	if silent {
		close := p.next()
		if close.Code() != code(')') {
			p.errorf(close, "expected ')', got %v", close.Code())
			return nil, false
		}
	}
	return cmd, true
}

// parseCommandBody parses "(prefix ':')? name args" or the raw ">" form.
// Tags, "!", and silencing are filled in by the caller.
func (p *parser) parseCommandBody() (*Command, bool) {
	t := p.next()
	if t.Code() == code('>') {
		return &Command{Name: p.lex.readRestOfLine(), Raw: true}, true
	}

	first, ok := p.parseStringToken(t, "a command name")
	if !ok {
		return nil, false
	}

	nt := p.next()
	var prefix *string
	var name string
	if nt.Code() == code(':') {
		prefix = &first
		nameTok := p.next()
		switch nameTok.Code() {
		case tIdent, tString:
			n, ok := p.parseStringToken(nameTok, "a command name")
			if !ok {
				return nil, false
			}
			name = n
		default:
			p.push(nameTok)
		}
	} else {
		p.push(nt)
		name = first
	}

	args, ok := p.parseArgs()
	if !ok {
		return nil, false
	}
	return &Command{Prefix: prefix, Name: name, Args: args}, true
}

// parseArgs parses a sequence of positional or keyed arguments, stopping at
// the line's terminator or a closing ')' (pushed back for the caller, which
// for ')' is the silencing form's own closer in parseCommandLine).
func (p *parser) parseArgs() ([]Arg, bool) {
	var args []Arg
	for {
		t := p.next()
		switch t.Code() {
		case tNewline, tEOF, tSep, code(')'):
			p.push(t)
			return args, true
		default:
			p.push(t)
		}

		valTok := p.next()
		v1, ok := p.parseStringToken(valTok, "an argument")
		if !ok {
			return nil, false
		}
		nt := p.next()
		if nt.Code() == code('=') {
			keyTok := valTok
			valueTok := p.next()
			v2, ok := p.parseStringToken(valueTok, "an argument value")
			if !ok {
				return nil, false
			}
			if v1 == "" {
				p.errorf(keyTok, "argument key must not be empty")
				return nil, false
			}
			key := v1
			args = append(args, Arg{Key: &key, Value: v2})
		} else {
			p.push(nt)
			args = append(args, Arg{Value: v1})
		}
	}
}

// parseTagList parses "[" tag ("," tag)* "]", consuming the closing "]".
func (p *parser) parseTagList() ([]string, bool) {
	p.next() // the leading '['
	var tags []string
	for {
		t := p.next()
		if t.Code() == code(']') {
			return tags, true
		}
		v, ok := p.parseStringToken(t, "a tag")
		if !ok {
			return nil, false
		}
		tags = append(tags, v)

		nt := p.next()
		switch nt.Code() {
		case code(','):
			continue
		case code(']'):
			return tags, true
		default:
			p.errorf(nt, "expected ',' or ']' in tag list, got %v", nt.Code())
			return nil, false
		}
	}
}

// parseStringToken requires t to be an identifier or quoted string and
// returns its decoded text.
func (p *parser) parseStringToken(t *token, what string) (string, bool) {
	switch t.Code() {
	case tIdent, tString:
		return t.Text, true
	default:
		p.errorf(t, "expected %s, got %v", what, t.Code())
		return "", false
	}
}

// dedupTags removes duplicate tag values, keeping the first occurrence of
// each (per spec, "Duplicates collapse").
func dedupTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
