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
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	for _, tt := range []struct {
		err  *Error
		want string
	}{
		{
			&Error{Kind: KindRunnerError, Pos: Position{File: "a.golden", Line: 3, Col: 1}, Command: "get", Message: "no such key"},
			`a.golden:3:1: RunnerError: command "get": no such key`,
		},
		{
			&Error{Kind: KindExpectMismatch, Pos: Position{Line: 3, Col: 1}, Message: "output does not match expected"},
			"3:1: ExpectMismatch: output does not match expected",
		},
		{
			&Error{Kind: KindParseError, Message: "a.golden:1:1: some problem\n"},
			"a.golden:1:1: some problem\n",
		},
	} {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindParseError:     "ParseError",
		KindRunnerError:    "RunnerError",
		KindPanic:          "Panic",
		KindExpectMismatch: "ExpectMismatch",
		KindExpectFail:     "ExpectFail",
		KindInternal:       "Internal",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestPositionString(t *testing.T) {
	for _, tt := range []struct {
		pos  Position
		want string
	}{
		{Position{}, "unknown"},
		{Position{Line: 4, Col: 2}, "4:2"},
		{Position{File: "x.golden", Line: 4, Col: 2}, "x.golden:4:2"},
	} {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("Position(%+v).String() = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestParseErrorIsKindParseError(t *testing.T) {
	_, err := Parse("=\n", "test.golden", Options{})
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != KindParseError {
		t.Fatalf("Parse error = %#v, want a *Error of KindParseError", err)
	}
	if !strings.Contains(perr.Message, "test.golden:1:1") {
		t.Errorf("message %q missing position", perr.Message)
	}
}
