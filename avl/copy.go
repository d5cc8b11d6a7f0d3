// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - create an independent tree with the same shape, keys and
// heights
func (tree *Tree[K, P]) Clone() *Tree[K, P] {
	root, count := clone(tree.root)
	return &Tree[K, P]{
		root:    root,
		compare: tree.compare,
		count:   count,
	}
}

// Assign - replace the contents of the tree with a copy of src
func (tree *Tree[K, P]) Assign(src *Tree[K, P]) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.root, tree.count = clone(src.root)
	tree.compare = src.compare
}

// Move - transfer all nodes to a new tree, leaving this tree empty
//
// existing node handles remain valid and now belong to the new tree
func (tree *Tree[K, P]) Move() *Tree[K, P] {
	moved := &Tree[K, P]{
		root:    tree.root,
		compare: tree.compare,
		count:   tree.count,
	}
	tree.root = nil
	tree.count = 0
	return moved
}
