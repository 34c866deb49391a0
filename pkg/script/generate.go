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

import "strings"

// Generate parses input and drives it against runner exactly as Run does,
// but instead of comparing each block's rendered output against the
// script's expected section, it rewrites the script with the output
// actually observed. It mechanically re-serializes each block's commands
// via Command.Format rather than remembering byte spans of the original
// source, the way Statement.Write rebuilds source from a parsed tree
// instead of echoing it back.
func Generate(input, file string, runner Runner, opts Options) (string, error) {
	sc, err := Parse(input, file, opts)
	if err != nil {
		return "", err
	}
	d := newDriver(runner, opts)
	runner.StartScript()
	defer runner.EndScript()

	var out strings.Builder
	for _, block := range sc.Blocks {
		rendered, err := d.renderBlock(block)
		if err != nil {
			return "", err
		}
		for _, cmd := range block.Commands {
			out.WriteString(cmd.Format(opts))
			out.WriteByte('\n')
		}
		out.WriteString("---\n")
		out.WriteString(rendered)
		out.WriteByte('\n')
	}
	return out.String(), nil
}
