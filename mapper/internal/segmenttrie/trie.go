/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated reasons such as
// "rgb.channel.range". Each node is one segment; "*" matches exactly one
// segment. Lookups return the deepest matching prefix, so a more specific
// rule wins over a shorter one.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted; set only when hasVal is true.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty or malformed segments, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix, e.g. "rgb.channel" or
// "rgb.*.range". Re-inserting a prefix replaces its value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	allWild := true
	for _, s := range segs {
		if s == "*" {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		allWild = false
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Lookup finds the deepest prefix matching reason and returns its value and
// the pattern it was inserted with. Exact and wildcard branches are both
// explored; at equal depth the exact branch wins. A malformed reason stops
// the walk at the last valid segment.
func (t *Trie[T]) Lookup(reason string) (val T, ok bool, pattern string) {
	if t == nil {
		return val, false, ""
	}
	best := -1
	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > best {
			best, val, pattern = depth, n.val, n.pattern
		}
		if off >= len(reason) {
			return
		}
		end := strings.IndexByte(reason[off:], '.')
		if end < 0 {
			end = len(reason)
		} else {
			end += off
		}
		seg := reason[off:end]
		if !validSegment(seg) {
			return
		}
		next := end
		if next < len(reason) {
			next++
		}
		if child, ok := n.children[seg]; ok {
			walk(child, next, depth+1)
		}
		if child, ok := n.children["*"]; ok {
			walk(child, next, depth+1)
		}
	}
	walk(t, 0, 0)
	if best < 0 {
		var zero T
		return zero, false, ""
	}
	return val, true, pattern
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
