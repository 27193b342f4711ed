// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package trie provides a byte-keyed trie that answers longest-prefix
// queries, used for matching punctuation against source text.
package trie

import (
	"fmt"
	"slices"
	"strings"
)

// Trie implements a map from strings to V, except lookups return the key
// which is the longest prefix of a given query.
//
// The zero value is empty and ready to use.
type Trie[V any] struct {
	// nodes[0] is the root. Each other node is reached by following one byte
	// of a key from its parent.
	nodes  []node
	values []V
}

type node struct {
	// Edges to child nodes, sorted by byte.
	edges []edge
	// Index into values, or -1 if no key ends at this node.
	value int
}

type edge struct {
	b    byte
	next int
}

// child returns the node reached from n by b, or where the edge would go.
func (n *node) child(b byte) (idx int, ok bool) {
	i, ok := slices.BinarySearchFunc(n.edges, b, func(e edge, b byte) int {
		return int(e.b) - int(b)
	})
	if !ok {
		return i, false
	}
	return n.edges[i].next, true
}

// Get returns the value corresponding to the longest prefix of key present
// in the trie.
//
// If no prefix of key is present, returns "" and the zero value.
func (t *Trie[V]) Get(key string) (prefix string, value V) {
	if len(t.nodes) == 0 {
		return "", value
	}

	n, found, length := 0, t.nodes[0].value, 0
	for i := range len(key) {
		next, ok := t.nodes[n].child(key[i])
		if !ok {
			break
		}
		n = next
		if v := t.nodes[n].value; v != -1 {
			found, length = v, i+1
		}
	}

	if found == -1 {
		return "", value
	}
	return key[:length], t.values[found]
}

// Insert adds a new value to this trie, replacing any value already
// associated with key.
func (t *Trie[V]) Insert(key string, value V) {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{value: -1})
	}

	n := 0
	for i := range len(key) {
		next, ok := t.nodes[n].child(key[i])
		if !ok {
			t.nodes[n].edges = slices.Insert(t.nodes[n].edges, next, edge{key[i], len(t.nodes)})
			next = len(t.nodes)
			t.nodes = append(t.nodes, node{value: -1})
		}
		n = next
	}

	if v := t.nodes[n].value; v != -1 {
		t.values[v] = value
		return
	}
	t.nodes[n].value = len(t.values)
	t.values = append(t.values, value)
}

// Len returns the number of keys in the trie.
func (t *Trie[V]) Len() int {
	return len(t.values)
}

// Dump returns a human-readable rendering of the trie's nodes, for test
// failure messages.
func (t *Trie[V]) Dump() string {
	var buf strings.Builder
	for i, n := range t.nodes {
		fmt.Fprintf(&buf, "%03d:", i)
		if n.value != -1 {
			fmt.Fprintf(&buf, " =%v", t.values[n.value])
		}
		for _, e := range n.edges {
			fmt.Fprintf(&buf, " %q->%03d", e.b, e.next)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
