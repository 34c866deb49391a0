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

// Package demo is a small worked example of a script.Runner: an in-memory
// string store driven by set/get/del/keys commands. It exists so
// cmd/goldscript is runnable out of the box, and so the testdata/*.golden
// scripts have a realistic, non-mock Runner to drive.
package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goldscript/goldscript/pkg/script"
)

// Store is a script.Runner backed by an in-memory key/value map. Create one
// with NewStore; the zero value has no map and panics on set. Values persist
// across the blocks of a script.
type Store struct {
	script.BaseRunner

	values map[string]string
	log    []string
}

// NewStore returns a ready-to-use Store.
func NewStore() *Store {
	return &Store{values: map[string]string{}}
}

func (s *Store) StartScript() { s.log = s.log[:0] }

func (s *Store) StartBlock() string {
	return ""
}

func (s *Store) StartCommand(cmd *script.Command) string {
	s.log = append(s.log, cmd.Name)
	return ""
}

// Run implements set, get, del, and keys against the store. Any other name is a
// runner error, the way an unrecognized RPC would be.
func (s *Store) Run(cmd *script.Command) (string, error) {
	args := script.ConsumeArgs(cmd)
	switch cmd.Name {
	case "set":
		key, ok := args.Next()
		if !ok {
			return "", fmt.Errorf("set: missing key")
		}
		value := args.NextDefault("")
		s.values[key] = value
		return "", nil
	case "get":
		key, ok := args.Next()
		if !ok {
			return "", fmt.Errorf("get: missing key")
		}
		value, ok := s.values[key]
		if !ok {
			return "", fmt.Errorf("get: no such key %q", key)
		}
		return value + "\n", nil
	case "del":
		key, ok := args.Next()
		if !ok {
			return "", fmt.Errorf("del: missing key")
		}
		if _, ok := s.values[key]; !ok {
			return "", fmt.Errorf("del: no such key %q", key)
		}
		delete(s.values, key)
		return "", nil
	case "keys":
		keys := make([]string, 0, len(s.values))
		for k := range s.values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return strings.Join(keys, " ") + "\n", nil
	default:
		return "", fmt.Errorf("unknown command %q", cmd.Name)
	}
}
