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

// ArgCursor drains a Command's arguments in source order, positional values
// first, followed by lookups into the keyed values by name. It is the
// helper a Runner.Run implementation uses instead of walking cmd.Args
// itself.
type ArgCursor struct {
	positional []string
	keyed      map[string]string
	next       int
}

// ConsumeArgs returns a cursor over cmd's arguments.
func ConsumeArgs(cmd *Command) *ArgCursor {
	c := &ArgCursor{keyed: make(map[string]string)}
	for _, a := range cmd.Args {
		if a.Positional() {
			c.positional = append(c.positional, a.Value)
		} else {
			c.keyed[*a.Key] = a.Value
		}
	}
	return c
}

// Next returns the next unconsumed positional value, or ok == false once
// they are exhausted.
func (c *ArgCursor) Next() (value string, ok bool) {
	if c.next >= len(c.positional) {
		return "", false
	}
	v := c.positional[c.next]
	c.next++
	return v, true
}

// NextDefault is like Next but returns def instead of reporting absence.
func (c *ArgCursor) NextDefault(def string) string {
	if v, ok := c.Next(); ok {
		return v
	}
	return def
}

// Remaining returns every positional value not yet consumed by Next.
func (c *ArgCursor) Remaining() []string {
	return append([]string(nil), c.positional[c.next:]...)
}

// Key looks up a keyed argument by name.
func (c *ArgCursor) Key(name string) (value string, ok bool) {
	value, ok = c.keyed[name]
	return value, ok
}

// KeyDefault is like Key but returns def instead of reporting absence.
func (c *ArgCursor) KeyDefault(name, def string) string {
	if v, ok := c.Key(name); ok {
		return v
	}
	return def
}
