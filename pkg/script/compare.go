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
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"
)

// compare is the run-mode verdict: byte-for-byte equality between a
// block's literal Expected text and its rendered output. cmp.Diff is used
// only to build a human-readable message once they are already known to
// differ; it never influences the pass/fail decision itself.
func compare(block *Block, rendered string, opts Options) error {
	if cmp.Equal([]byte(block.Expected), []byte(rendered)) {
		return nil
	}

	var pos Position
	if len(block.Commands) > 0 {
		pos = block.Commands[0].Pos
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "output does not match expected (-expected +rendered):\n%s",
		cmp.Diff(block.Expected, rendered))
	if opts.Debug {
		fmt.Fprintf(&msg, "commands:\n%s", pretty.Sprint(block.Commands))
	}

	return &Error{
		Kind:    KindExpectMismatch,
		Pos:     pos,
		Message: msg.String(),
	}
}
