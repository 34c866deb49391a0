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

// Package script implements a golden-script testing engine: a script is a
// plain-text file of alternating input and expected-output blocks,
//
//	command arg1 arg2=val
//	---
//	expected output of running command
//
// A caller-supplied Runner turns commands into side effects and text; Run
// drives a script against a Runner and reports a mismatch if the observed
// output differs from what the script says to expect. Generate runs the same
// script and instead rewrites it with the output actually observed, which is
// how a script is authored or updated in the first place:
//
//	out, err := script.Generate(src, "myscript.golden", myRunner, script.Options{})
//
// The package is purely textual: it does not sandbox, schedule, or retry the
// Runner, and it performs no I/O of its own beyond the bytes it's given,
// apart from the lexer trace written to standard error when Options.Debug
// is set.
package script
