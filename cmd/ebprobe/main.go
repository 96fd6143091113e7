// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// ebprobe drives a scheduler-like workload against a Tree64 for
// profiling: a queue of pseudo-random expiry keys is kept sorted in the
// tree, the earliest entry is popped and re-armed, and range lookups
// probe the queue, mimicking a timer wheel under churn.
package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/gaissmai/ebtree"
)

const (
	timers = 100_000
	rounds = 10_000_000
)

var prng = rand.New(rand.NewPCG(42, 42))

func main() {
	tree := ebtree.New64[int]()
	nodes := make([]ebtree.Node64[int], timers)

	now := uint64(0)
	for i := range nodes {
		nodes[i].Key = now + prng.Uint64N(1_000_000)
		nodes[i].Val = i
		tree.Insert(&nodes[i])
	}

	var fired, hits int
	for range rounds {
		// pop the earliest timer and re-arm it in the future
		nd := tree.First()
		now = nd.Key
		nd.Delete()
		nd.Key = now + 1 + prng.Uint64N(1_000_000)
		tree.Insert(nd)
		fired++

		// probe the queue the way a poller would
		if tree.LookupGE(now+500_000) != nil {
			hits++
		}
	}

	fmt.Printf("fired %d timers, %d probe hits, clock at %d\n", fired, hits, now)
}
