// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ebtree_test

import (
	"fmt"

	"github.com/gaissmai/ebtree"
)

func ExampleTree32() {
	tree := ebtree.New32[string]()

	for _, item := range []struct {
		key uint32
		val string
	}{
		{13, "swordfish"},
		{8, "herring"},
		{14, "tuna"},
		{10, "mackerel"},
		{12, "sardine"},
	} {
		tree.Insert(&ebtree.Node32[string]{Key: item.key, Val: item.val})
	}

	for n := tree.First(); n != nil; n = n.Next() {
		fmt.Printf("%d %s\n", n.Key, n.Val)
	}

	fmt.Println("floor(11):", tree.LookupLE(11).Val)
	fmt.Println("ceil(11): ", tree.LookupGE(11).Val)

	// Output:
	// 8 herring
	// 10 mackerel
	// 12 sardine
	// 13 swordfish
	// 14 tuna
	// floor(11): mackerel
	// ceil(11):  sardine
}

func ExampleTree64_scheduler() {
	// a run queue keyed by deadline, duplicates fire in FIFO order
	queue := ebtree.New64[string]()

	queue.Insert(&ebtree.Node64[string]{Key: 300, Val: "gc"})
	queue.Insert(&ebtree.Node64[string]{Key: 100, Val: "flush"})
	queue.Insert(&ebtree.Node64[string]{Key: 100, Val: "retry"})
	queue.Insert(&ebtree.Node64[string]{Key: 200, Val: "ping"})

	for !queue.IsEmpty() {
		n := queue.First()
		n.Delete()
		fmt.Printf("t=%d %s\n", n.Key, n.Val)
	}

	// Output:
	// t=100 flush
	// t=100 retry
	// t=200 ping
	// t=300 gc
}

func ExampleTreeBytes_longestPrefixMatch() {
	table := ebtree.NewBytes[string]()

	routes := []struct {
		addr []byte
		bits int
		via  string
	}{
		{[]byte{0, 0, 0, 0}, 0, "default"},
		{[]byte{10, 0, 0, 0}, 8, "lan"},
		{[]byte{10, 10, 0, 0}, 16, "dmz"},
	}
	for _, r := range routes {
		table.InsertPrefix(&ebtree.NodeBytes[string]{Key: r.addr, Pfx: r.bits, Val: r.via})
	}

	for _, probe := range [][]byte{
		{10, 10, 3, 4},
		{10, 99, 3, 4},
		{192, 168, 1, 1},
	} {
		fmt.Printf("%v via %s\n", probe, table.LookupLongest(probe).Val)
	}

	// Output:
	// [10 10 3 4] via dmz
	// [10 99 3 4] via lan
	// [192 168 1 1] via default
}
