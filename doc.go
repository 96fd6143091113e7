// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package ebtree provides Elastic Binary Trees (EBtrees): ordered,
// intrusive, caller-allocated associative containers.
//
// An EBtree is a binary radix tree in which every stored entry supplies
// both a leaf part and a spare inner part. The inner part of an entry is
// threaded into the tree somewhere above its leaf whenever a branching
// point is needed, so the tree never allocates: inserting N entries uses
// exactly the N node headers the caller already owns. Removing an entry
// frees its own parts again, in constant time, by repurposing the parent's
// spare inner part when necessary.
//
// This buys a set of properties that balanced trees cannot offer:
//
//   - Insertion and lookup are bounded by the key width, not by the
//     population: at most one descent step per key bit.
//   - Deletion is O(1): a handful of pointer updates, no rebalancing.
//   - Traversal is stateless; every node reaches its neighbors through
//     its own parent links.
//   - Duplicate keys form a dedicated subtree and enumerate in exact
//     insertion order, which makes fair FIFO scheduling trivial.
//
// The tree is deliberately NOT balanced. The worst case depth equals the
// key width, but the per-level work is so small that EBtrees still win in
// the places they were designed for: timer wheels, run queues and
// connection tables, where keys are wide, spread out, and deleted as often
// as they are inserted.
//
// Key flavors:
//
//   - Tree32, Tree64, Tree128: unsigned integer keys
//   - Tree32i, Tree64i, Tree128i: signed integer keys in two's
//     complement order
//   - TreePtr: pointer-sized integer keys
//   - TreeBytes: fixed-length byte-string keys, with a
//     longest-prefix-match variant for prefix/mask workloads
//   - TreeString: string keys, compared as NUL-terminated byte strings
//
// All flavors share the same node skeleton and the same traversal and
// deletion machinery; only descent and insertion are typed.
//
// Storage for every node is supplied and owned by the caller, nodes may be
// re-inserted after deletion, and a tree performs no synchronization:
// concurrent mutation, or reading during mutation, requires external
// locking.
package ebtree
