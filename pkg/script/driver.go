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

// This file implements Run, which drives a parsed Script against a Runner
// and reports the first mismatch or runtime failure encountered. It mirrors
// the accumulate-as-you-walk shape of the teacher's ToEntry: one driver
// walks the Script's Blocks in order, folding per-block rendered text into
// a result instead of returning partial output on the first problem.

import (
	"fmt"
	"strings"
)

// driver holds the mutable state a script's _set commands adjust, plus the
// Runner and Options it was started with. A driver is scoped to a single
// script; Run and Generate each construct their own.
type driver struct {
	opts   Options
	runner Runner

	prefix, suffix           string
	startBlock, endBlock     string
	startCommand, endCommand string
}

func newDriver(runner Runner, opts Options) *driver {
	return &driver{runner: runner, opts: opts.defaulted()}
}

// Run parses input and drives it against runner, reporting the first
// mismatch, runner failure, or parse error as a *Error.
func Run(input, file string, runner Runner, opts Options) error {
	sc, err := Parse(input, file, opts)
	if err != nil {
		return err
	}
	d := newDriver(runner, opts)
	runner.StartScript()
	defer runner.EndScript()

	for _, block := range sc.Blocks {
		rendered, err := d.renderBlock(block)
		if err != nil {
			return err
		}
		if err := compare(block, rendered, opts); err != nil {
			return err
		}
	}
	return nil
}

// renderBlock runs every command of block in order and returns the
// rendered output text described by §4.4, or the *Error that aborted it.
func (d *driver) renderBlock(block *Block) (string, error) {
	var buf strings.Builder
	emit := func(s string) {
		if s != "" {
			buf.WriteString(s)
		}
	}

	emit(d.runner.StartBlock())
	emit(d.startBlock)

	for _, cmd := range block.Commands {
		// Snapshot the hook text before dispatch: a _set that changes
		// start_command/end_command takes effect for subsequent commands,
		// not for the end-of-command hook of the _set command itself.
		startCommand, endCommand := d.startCommand, d.endCommand

		emit(applyCommandPrefix(d.runner.StartCommand(cmd), cmd.Prefix))
		emit(applyCommandPrefix(startCommand, cmd.Prefix))

		text, outcome, message := d.dispatch(cmd)

		if cmd.Fail {
			switch outcome {
			case OutcomeOK:
				return "", &Error{
					Kind:    KindExpectFail,
					Pos:     cmd.Pos,
					Command: cmd.Name,
					Message: "expected failure but command succeeded",
				}
			case OutcomeError:
				text = "Error: " + message + "\n"
			case OutcomePanic:
				text = "Panic: " + message + "\n"
			}
		} else {
			switch outcome {
			case OutcomeError:
				return "", &Error{Kind: KindRunnerError, Pos: cmd.Pos, Command: cmd.Name, Message: message}
			case OutcomePanic:
				return "", &Error{Kind: KindPanic, Pos: cmd.Pos, Command: cmd.Name, Message: message}
			}
		}

		if !cmd.Silent {
			emit(d.wrapOutput(cmd, text))
		}

		emit(applyCommandPrefix(d.runner.EndCommand(cmd), cmd.Prefix))
		emit(applyCommandPrefix(endCommand, cmd.Prefix))
	}

	emit(d.runner.EndBlock())
	emit(d.endBlock)

	return d.finalize(buf.String()), nil
}

// dispatch runs cmd, routing "_"-prefixed names to the engine's own
// internal commands (§4.3) instead of the Runner.
func (d *driver) dispatch(cmd *Command) (text string, outcome Outcome, message string) {
	if cmd.Internal() {
		return d.runInternal(cmd)
	}
	return d.safeRun(cmd)
}

// safeRun invokes the user Runner, turning a panic into OutcomePanic the
// same way an engine-simulated _panic does, so the two are indistinguishable
// to the fail-containment logic above.
func (d *driver) safeRun(cmd *Command) (text string, outcome Outcome, message string) {
	defer func() {
		if r := recover(); r != nil {
			text, outcome, message = "", OutcomePanic, fmt.Sprint(r)
		}
	}()
	t, err := d.runner.Run(cmd)
	if err != nil {
		return "", OutcomeError, err.Error()
	}
	return t, OutcomeOK, ""
}

// wrapOutput applies cmd's own "prefix: name" label, if any, to each line of
// its output, then the driver's current _set prefix/suffix around the
// result as a whole. Empty output yields no lines, so it is left untouched
// rather than wrapped into a phantom prefix/suffix pair.
func (d *driver) wrapOutput(cmd *Command, text string) string {
	if text == "" {
		return ""
	}
	return d.prefix + applyCommandPrefix(text, cmd.Prefix) + d.suffix
}

// applyCommandPrefix prepends "{prefix}: " to every line of text, the
// §3/§4.4 per-command label set by the "prefix: name" syntax. It applies to
// a command's own output and to the start/end-of-command hook text around
// it. A nil prefix
// or empty text leaves text untouched.
func applyCommandPrefix(text string, prefix *string) string {
	if prefix == nil || text == "" {
		return text
	}

	trailingNL := strings.HasSuffix(text, "\n")
	body := text
	if trailingNL {
		body = text[:len(text)-1]
	}
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = *prefix + ": " + l
	}
	out := strings.Join(lines, "\n")
	if trailingNL {
		out += "\n"
	}
	return out
}

// finalize applies the default-ok and empty-line prefix rules to a block's
// accumulated raw output.
func (d *driver) finalize(raw string) string {
	if raw == "" {
		return "ok\n"
	}

	trailingNL := strings.HasSuffix(raw, "\n")
	body := raw
	if trailingNL {
		body = raw[:len(raw)-1]
	}

	lines := strings.Split(body, "\n")
	hasEmpty := false
	for _, l := range lines {
		if l == "" {
			hasEmpty = true
			break
		}
	}
	if !hasEmpty {
		return raw
	}

	for i, l := range lines {
		lines[i] = "> " + l
	}
	out := strings.Join(lines, "\n")
	if trailingNL {
		out += "\n"
	}
	return out
}
