// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ebtree

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dump writes the tree shape below ro to w, one entry per line. key
// formats the key of the node owning a branch block. The output is a
// debugging aid, not a serialization format; the internal layout is not
// stable across versions.
func (ro *root) dump(w io.Writer, key func(*node) string) {
	if ro.b[sideLeft].p == nil {
		fmt.Fprintln(w, "empty tree")
		return
	}
	dumpRec(w, ro.b[sideLeft], 0, key)
}

// dumpRec, rec-descent of one branch.
func dumpRec(w io.Writer, l link, depth int, key func(*node) string) {
	indent := strings.Repeat(".", depth)
	n := nodeOf(l.p)

	if l.tag == kindLeaf {
		fmt.Fprintf(w, "%sleaf key: %s\n", indent, key(n))
		return
	}

	fmt.Fprintf(w, "%snode bit: %d key: %s\n", indent, n.bit, key(n))
	dumpRec(w, n.branches.b[sideLeft], depth+1, key)
	dumpRec(w, n.branches.b[sideRight], depth+1, key)
}

// dumpString is just a wrapper for dump.
func (t *Tree32[V]) dumpString() string {
	w := new(strings.Builder)
	t.root.dump(w, func(n *node) string {
		return fmt.Sprintf("%#x", n32[V](n).Key)
	})
	return w.String()
}

// dumpString is just a wrapper for dump.
func (t *TreeBytes[V]) dumpString() string {
	w := new(strings.Builder)
	t.root.dump(w, func(n *node) string {
		nd := nbytes[V](n)
		return fmt.Sprintf("%q/%d", nd.Key, nd.Pfx)
	})
	return w.String()
}
