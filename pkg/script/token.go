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

import "fmt"

// Position identifies a point in a script's source text. Line and Col are
// both 1's based.
type Position struct {
	File string
	Line int
	Col  int
}

// String renders p as "file:line:col", omitting fields that are unset.
func (p Position) String() string {
	switch {
	case p.File == "" && p.Line == 0:
		return "unknown"
	case p.File == "":
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	default:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
	}
}

// code identifies the kind of a token. Single-character structural tokens
// are represented by their own rune value, as in the teacher's lexer; the
// remaining kinds use small negative values so they never collide with a
// rune.
type code int

const (
	tEOF     = code(-1 - iota) // end of input
	tError                     // a lex error; Text holds the offending source text
	tIdent                     // an unquoted identifier/value
	tString                    // a quoted, escape-decoded string
	tSep                       // the "---" block separator
	tNewline                   // end of an input line
	tRaw                       // verbatim text; never emitted by the lexer
)

func (c code) String() string {
	switch c {
	case tEOF:
		return "EOF"
	case tError:
		return "Error"
	case tIdent:
		return "Identifier"
	case tString:
		return "String"
	case tSep:
		return "Separator"
	case tNewline:
		return "Newline"
	case tRaw:
		return "Raw"
	}
	if c < 0 || c > '~' {
		return fmt.Sprintf("%d", c)
	}
	return fmt.Sprintf("%q", rune(c))
}

// token is one lexical unit read from the input.
type token struct {
	code code
	Text string
	Pos  Position
}

// Code returns the code of t. A nil token is treated as tEOF.
func (t *token) Code() code {
	if t == nil {
		return tEOF
	}
	return t.code
}

func (t *token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%s: %v", t.Pos, t.code)
	}
	return fmt.Sprintf("%s: %v %q", t.Pos, t.code, t.Text)
}
