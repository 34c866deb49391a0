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

// A Runner gives commands meaning. The driver calls a Runner's hooks as it
// walks a parsed Script; only Run is required. Concrete runners embed
// BaseRunner to pick up no-op defaults for everything else, the way Go
// stands in for an interface with default methods.
type Runner interface {
	// StartScript is called once before the first block of a script runs.
	StartScript()
	// EndScript is called once after the last block of a script has run.
	EndScript()

	// StartBlock is called before a block's first command runs. Text it
	// returns is prepended to the block's rendered output.
	StartBlock() string
	// EndBlock is called after a block's last command has run. Text it
	// returns is appended to the block's rendered output.
	EndBlock() string

	// StartCommand is called before cmd runs. Text it returns is written
	// to the block's output ahead of cmd's own output.
	StartCommand(cmd *Command) string
	// EndCommand is called after cmd has run, whether or not it failed.
	// Text it returns is written to the block's output after cmd's own
	// output.
	EndCommand(cmd *Command) string

	// Run executes cmd and returns the text it produces. Only names
	// without a leading underscore reach Run: the driver intercepts and
	// dispatches every "_"-prefixed command itself (§4.3).
	Run(cmd *Command) (text string, err error)
}

// BaseRunner implements every Runner hook except Run as a no-op. Embed it in
// a concrete runner and override only the hooks that runner needs.
type BaseRunner struct{}

func (BaseRunner) StartScript() {}
func (BaseRunner) EndScript()   {}

func (BaseRunner) StartBlock() string { return "" }
func (BaseRunner) EndBlock() string   { return "" }

func (BaseRunner) StartCommand(*Command) string { return "" }
func (BaseRunner) EndCommand(*Command) string   { return "" }

// Outcome classifies how a single command's execution went.
type Outcome int

const (
	// OutcomeOK indicates the command ran and returned no error.
	OutcomeOK Outcome = iota
	// OutcomeError indicates Runner.Run returned a non-nil error.
	OutcomeError
	// OutcomePanic indicates Runner.Run panicked; the driver recovers it
	// and records the panic value as the outcome's message.
	OutcomePanic
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeError:
		return "error"
	case OutcomePanic:
		return "panic"
	default:
		return "outcome(?)"
	}
}
