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

import "testing"

func TestCommandHasTag(t *testing.T) {
	c := &Command{Tags: []string{"slow", "flaky"}}
	if !c.HasTag("slow") {
		t.Error("HasTag(slow) = false, want true")
	}
	if c.HasTag("fast") {
		t.Error("HasTag(fast) = true, want false")
	}
}

func TestCommandInternal(t *testing.T) {
	if (&Command{Name: "_set"}).Internal() != true {
		t.Error("_set should be Internal")
	}
	if (&Command{Name: "set"}).Internal() != false {
		t.Error("set should not be Internal")
	}
}

func TestFormatTagOrder(t *testing.T) {
	c := &Command{Name: "cmd", Tags: []string{"z", "a"}}
	if got, want := c.Format(Options{}), "[a, z] cmd"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if got, want := c.Format(Options{PreserveTagOrder: true}), "[z, a] cmd"; got != want {
		t.Errorf("Format(PreserveTagOrder) = %q, want %q", got, want)
	}
}

func TestFormatRaw(t *testing.T) {
	c := &Command{Name: "anything goes : here", Raw: true, Tags: []string{"t"}}
	if got, want := c.Format(Options{}), "[t] > anything goes : here"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestQuoteIfNeeded(t *testing.T) {
	for _, tt := range []struct{ in, want string }{
		{"bare", "bare"},
		{"with-sym_ok.1/2@3", "with-sym_ok.1/2@3"},
		{"", `""`},
		{"has space", `"has space"`},
		{"has\nnewline", `"has\nnewline"`},
		{"has\x07bell", `"has\x07bell"`},
		{"has​zwsp", `"has\u{200b}zwsp"`},
	} {
		if got := quoteIfNeeded(tt.in); got != tt.want {
			t.Errorf("quoteIfNeeded(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestQuoteNonPrintableRoundTrip pins the reason quoteString exists: a value
// with non-printable runes, formatted then reparsed, must come back equal.
// strconv.Quote's \uXXXX/\UXXXXXXXX forms would fail this, since the lexer's
// \u escape only understands the braced \u{...} spelling (lex.go readEscape).
func TestQuoteNonPrintableRoundTrip(t *testing.T) {
	cmd := &Command{Name: "has​zwsp\x07bell"}
	formatted := cmd.Format(Options{})

	sc, err := Parse(formatted+"\n---\n\n", "test.golden", Options{})
	if err != nil {
		t.Fatalf("re-Parse(%q) error: %v", formatted, err)
	}
	if got := sc.Blocks[0].Commands[0].Name; got != cmd.Name {
		t.Errorf("round trip %q -> %q changed the name to %q", cmd.Name, formatted, got)
	}
}
