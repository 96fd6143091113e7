// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ebtree

import "unsafe"

// Branch sides and branch kinds. A tag byte means a side (left/right) in
// the parent links nodeP and leafP, and a kind (leaf/node) in the branch
// links. The walking code relies on these exact values: left pairs with
// leaf and right pairs with node, so a tag can be moved between the two
// roles without translation.
const (
	sideLeft  int8 = 0
	sideRight int8 = 1

	kindLeaf int8 = 0
	kindNode int8 = 1
)

// link is a tagged reference to the root block of a node. The original C
// implementation squeezes the tag into the low pointer bit; here the tag
// lives in its own byte so the pointer stays traceable by the garbage
// collector. A nil pointer marks an empty branch; only a tree head may
// carry one.
type link struct {
	p   *root
	tag int8
}

// root is a pair of tagged branch links. It heads a whole tree as well as
// the subtree below every inner node. On a tree head the right link never
// refers to tree content: its pointer stays nil and its tag holds the
// unique-keys mode flag. This is also how upward walks detect the head:
// no inner node can have a nil branch.
type root struct {
	b [2]link
}

// node is the type-agnostic part of every tree entry. It bundles the leaf
// role (leafP) and the spare inner role (branches, nodeP, bit) of one
// entry. branches must stay the first field and node must stay the first
// field of every typed node, so that *root, *node and the typed nodes
// convert into each other at offset zero.
type node struct {
	branches root
	nodeP    link // parent of the inner role, tag is the side; nil pointer while unused
	leafP    link // parent of the leaf role, tag is the side; nil pointer while unlinked
	bit      int32
}

// nodeOf converts a branch block reference back into its node. The Go
// rendition of container_of, valid because branches sits at offset zero.
func nodeOf(r *root) *node {
	return (*node)(unsafe.Pointer(r))
}

// inTree reports whether the node is currently linked into a tree.
func (n *node) inTree() bool {
	return n.leafP.p != nil
}

// walkDown descends from start, always turning to the same side, and
// returns the node hosting the first leaf reached on that side, or nil
// if start is an empty link.
func walkDown(start link, side int8) *node {
	if start.p == nil {
		return nil
	}
	for start.tag == kindNode {
		start = start.p.b[side]
	}
	return nodeOf(start.p)
}

// setUnique flags the head so that inserts of an already present key
// return the incumbent entry instead of building a duplicate subtree.
func (ro *root) setUnique() {
	ro.b[sideRight].tag = 1
}

func (ro *root) unique() bool {
	return ro.b[sideRight].tag != 0
}

func (ro *root) isEmpty() bool {
	return ro.b[sideLeft].p == nil
}
