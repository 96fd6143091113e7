// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ebtree

// delete unlinks the leaf from its tree and marks the node unused.
// Deleting an already unlinked node is a no-op.
//
// Deletion only ever applies to leaves. The leaf's parent loses its last
// branching purpose and is released; if the departing entry's own inner
// part is still threaded somewhere above, the freshly released parent is
// repurposed to replace it. Constant work, no rebalancing.
func (n *node) delete() {
	if n.leafP.p == nil {
		return
	}

	pside := n.leafP.tag
	proot := n.leafP.p

	// We can only be attached to the head by its left branch, so if the
	// parent's right branch is empty the tree is this single leaf.
	if proot.b[sideRight].p == nil {
		proot.b[sideLeft] = link{}
		n.leafP = link{}
		return
	}
	parent := nodeOf(proot)

	// Reparent our sibling, branch or leaf, directly below the
	// grandparent, releasing the parent's inner part.
	gpside := parent.nodeP.tag
	gparent := parent.nodeP.p

	gparent.b[gpside] = parent.branches.b[pside^1]
	sib := gparent.b[gpside]
	if sib.tag == kindLeaf {
		nodeOf(sib.p).leafP = link{gparent, gpside}
	} else {
		nodeOf(sib.p).nodeP = link{gparent, gpside}
	}

	// The parent's inner part is now spare. If it belongs to the node
	// being deleted it simply goes unused with it.
	parent.nodeP = link{}

	if n.nodeP.p == nil {
		n.leafP = link{}
		return
	}

	// Our own inner part is still in use somewhere above. The spare
	// parent replaces it; the parent sits below that position, so
	// keeping its key for the bit string stays valid.
	parent.nodeP = n.nodeP
	parent.branches = n.branches
	parent.bit = n.bit

	gpside = parent.nodeP.tag
	gparent = parent.nodeP.p
	gparent.b[gpside] = link{&parent.branches, kindNode}

	for side := sideLeft; side <= sideRight; side++ {
		br := parent.branches.b[side]
		if br.tag == kindNode {
			nodeOf(br.p).nodeP = link{&parent.branches, side}
		} else {
			nodeOf(br.p).leafP = link{&parent.branches, side}
		}
	}

	n.leafP = link{}
}
