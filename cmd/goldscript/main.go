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

// Program goldscript runs golden scripts against the built-in demo
// key/value store, or rewrites them from observed output.
//
// Usage: goldscript [--generate] [--debug] [--write] SCRIPT ...
//
// Without --generate, each SCRIPT is run and a mismatch is reported to
// standard error. With --generate, each SCRIPT is rewritten with the
// output actually observed; --write saves the result back to the file in
// place instead of printing it to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt"

	"github.com/goldscript/goldscript/internal/demo"
	"github.com/goldscript/goldscript/pkg/script"
)

func main() {
	var generate, debug, write bool
	getopt.BoolVarLong(&generate, "generate", 'g', "rewrite scripts from observed output instead of checking them")
	getopt.BoolVarLong(&debug, "debug", 'd', "trace lexer states and dump commands on mismatch")
	getopt.BoolVarLong(&write, "write", 'w', "with --generate, write the result back to the file")
	getopt.SetParameters("SCRIPT ...")
	getopt.Parse()

	files := getopt.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "goldscript: no scripts given")
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	opts := script.Options{Debug: debug}

	status := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			status = 1
			continue
		}

		runner := demo.NewStore()
		if generate {
			out, err := script.Generate(string(data), file, runner, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
				status = 1
				continue
			}
			if write {
				if err := os.WriteFile(file, []byte(out), 0644); err != nil {
					fmt.Fprintln(os.Stderr, err)
					status = 1
				}
			} else {
				fmt.Print(out)
			}
			continue
		}

		if err := script.Run(string(data), file, runner, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			status = 1
		}
	}
	os.Exit(status)
}
