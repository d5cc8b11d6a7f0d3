// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync/atomic"
)

// Node - a node in the tree
type Node[K any] struct {
	left   *Node[K] // left sub-tree
	right  *Node[K] // right sub-tree
	up     *Node[K] // points to parent node, never owns it
	key    K        // key part for ordering
	height int      // 0 for an unbalanced tree
}

// global data for allocator
// trees in different go routines can allocate at the same time
var totalNodes atomic.Uint64 // total nodes created
var freedNodes atomic.Uint64 // total nodes released

// Nodes - number of nodes created and released by all trees
func Nodes() (created uint64, freed uint64) {
	return totalNodes.Load(), freedNodes.Load()
}

// allocate a new leaf node
func newNode[K any](key K, up *Node[K], height int) *Node[K] {
	totalNodes.Add(1)
	return &Node[K]{
		key:    key,
		up:     up,
		height: height,
	}
}

// release a node that has been unlinked from its tree
//
// all links are cleared so that a stale handle cannot be used to
// reach back into the tree
func freeNode[K any](node *Node[K]) {
	var zero K

	node.up = nil
	node.left = nil
	node.right = nil
	node.key = zero
	node.height = 0

	freedNodes.Add(1)
}
