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

// fakeRunner is a minimal Runner for driver/internal tests: Run is
// supplied by the test, every hook defaults to BaseRunner's no-op.
type fakeRunner struct {
	BaseRunner
	run func(cmd *Command) (string, error)
}

func (f *fakeRunner) Run(cmd *Command) (string, error) {
	if f.run == nil {
		return "", nil
	}
	return f.run(cmd)
}

func TestInternalSet(t *testing.T) {
	d := newDriver(&fakeRunner{}, Options{})
	cmd := &Command{Name: "_set", Args: []Arg{
		{Key: str("prefix"), Value: "p: "},
		{Key: str("suffix"), Value: "\n"},
	}}
	text, outcome, msg := d.runInternal(cmd)
	if outcome != OutcomeOK || text != "" || msg != "" {
		t.Fatalf("_set = (%q, %v, %q), want (\"\", OutcomeOK, \"\")", text, outcome, msg)
	}
	if d.prefix != "p: " || d.suffix != "\n" {
		t.Errorf("driver state = prefix %q suffix %q, want %q %q", d.prefix, d.suffix, "p: ", "\n")
	}
}

func TestInternalSetUnknownKey(t *testing.T) {
	d := newDriver(&fakeRunner{}, Options{})
	cmd := &Command{Name: "_set", Args: []Arg{{Key: str("bogus"), Value: "x"}}}
	_, outcome, msg := d.runInternal(cmd)
	if outcome != OutcomeError || msg == "" {
		t.Errorf("_set with bad key = (_, %v, %q), want OutcomeError with a message", outcome, msg)
	}
}

func TestInternalEcho(t *testing.T) {
	d := newDriver(&fakeRunner{}, Options{})
	cmd := &Command{Name: "_echo", Args: []Arg{{Value: "hello"}, {Value: "world\n"}}}
	text, outcome, _ := d.runInternal(cmd)
	if outcome != OutcomeOK || text != "hello world\n" {
		t.Errorf("_echo = (%q, %v), want (%q, OutcomeOK)", text, outcome, "hello world\n")
	}
}

func TestInternalPanic(t *testing.T) {
	d := newDriver(&fakeRunner{}, Options{})
	cmd := &Command{Name: "_panic", Args: []Arg{{Value: "boom"}}}
	text, outcome, msg := d.runInternal(cmd)
	if outcome != OutcomePanic || msg != "boom" || text != "" {
		t.Errorf("_panic = (%q, %v, %q), want (\"\", OutcomePanic, %q)", text, outcome, msg, "boom")
	}
}

func TestInternalSleep(t *testing.T) {
	d := newDriver(&fakeRunner{}, Options{})
	cmd := &Command{Name: "_sleep", Args: []Arg{{Key: str("ms"), Value: "5"}}}
	_, outcome, _ := d.runInternal(cmd)
	if outcome != OutcomeOK {
		t.Errorf("_sleep outcome = %v, want OutcomeOK", outcome)
	}

	bad := &Command{Name: "_sleep", Args: []Arg{{Key: str("ms"), Value: "nope"}}}
	_, outcome, msg := d.runInternal(bad)
	if outcome != OutcomeError || msg == "" {
		t.Errorf("_sleep with bad ms = (_, %v, %q), want OutcomeError with a message", outcome, msg)
	}
}

func TestInternalUnknown(t *testing.T) {
	d := newDriver(&fakeRunner{}, Options{})
	_, outcome, msg := d.runInternal(&Command{Name: "_bogus"})
	if outcome != OutcomeError || msg == "" {
		t.Errorf("_bogus = (_, %v, %q), want OutcomeError with a message", outcome, msg)
	}
}
