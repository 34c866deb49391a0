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
	"strconv"
	"strings"
)

// runInternal dispatches an Internal (cmd.Internal() == true) command. It is
// never handed to the Runner: the driver interprets these itself, per §4.3.
func (d *driver) runInternal(cmd *Command) (text string, outcome Outcome, message string) {
	switch cmd.Name {
	case "_set":
		return d.runSet(cmd)
	case "_echo":
		return d.runEcho(cmd)
	case "_panic":
		return d.runPanic(cmd)
	case "_sleep":
		return d.runSleep(cmd)
	default:
		return "", OutcomeError, fmt.Sprintf("unknown internal command %q", cmd.Name)
	}
}

// runSet mutates driver state. Recognized keys: prefix, suffix,
// start_command, end_command, start_block, end_block.
func (d *driver) runSet(cmd *Command) (string, Outcome, string) {
	for _, a := range cmd.Args {
		if a.Positional() {
			return "", OutcomeError, "_set takes only key=value arguments"
		}
		switch *a.Key {
		case "prefix":
			d.prefix = a.Value
		case "suffix":
			d.suffix = a.Value
		case "start_command":
			d.startCommand = a.Value
		case "end_command":
			d.endCommand = a.Value
		case "start_block":
			d.startBlock = a.Value
		case "end_block":
			d.endBlock = a.Value
		default:
			return "", OutcomeError, fmt.Sprintf("_set: unknown key %q", *a.Key)
		}
	}
	return "", OutcomeOK, ""
}

// runEcho appends each positional argument's value, space-joined, verbatim:
// no escape is reinterpreted and no newline is inserted beyond what the
// value itself already carries.
func (d *driver) runEcho(cmd *Command) (string, Outcome, string) {
	args := ConsumeArgs(cmd)
	values := append([]string(nil), args.Remaining()...)
	return strings.Join(values, " "), OutcomeOK, ""
}

// runPanic simulates a command panic without actually unwinding the Go
// stack; the driver treats OutcomePanic exactly as it treats a real
// recovered panic from Runner.Run.
func (d *driver) runPanic(cmd *Command) (string, Outcome, string) {
	args := ConsumeArgs(cmd)
	msg := args.NextDefault("")
	return "", OutcomePanic, msg
}

// runSleep is a no-op timing hint: the engine is strictly sequential (§5)
// and never actually sleeps, but a Runner can observe the directive via
// ConsumeArgs from its own hooks if it cares about timing.
func (d *driver) runSleep(cmd *Command) (string, Outcome, string) {
	args := ConsumeArgs(cmd)
	if ms := args.KeyDefault("ms", ""); ms != "" {
		if _, err := strconv.Atoi(ms); err != nil {
			return "", OutcomeError, fmt.Sprintf("_sleep: invalid ms=%q", ms)
		}
	}
	return "", OutcomeOK, ""
}
