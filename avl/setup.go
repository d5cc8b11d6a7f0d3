// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K any, P Policy] struct {
	root    *Node[K]
	compare func(a K, b K) int
	count   int
}

// New - create an initially empty balanced tree of ordered keys
func New[K cmp.Ordered]() *Tree[K, Balanced] {
	return Make[K, Balanced](cmp.Compare[K])
}

// NewFunc - create an initially empty balanced tree ordered by
// compare, which must return <0, 0 or >0 and be a strict total order
func NewFunc[K any](compare func(a K, b K) int) *Tree[K, Balanced] {
	return Make[K, Balanced](compare)
}

// NewUnbalanced - create an initially empty unbalanced tree of ordered keys
func NewUnbalanced[K cmp.Ordered]() *Tree[K, Unbalanced] {
	return Make[K, Unbalanced](cmp.Compare[K])
}

// NewUnbalancedFunc - create an initially empty unbalanced tree ordered by compare
func NewUnbalancedFunc[K any](compare func(a K, b K) int) *Tree[K, Unbalanced] {
	return Make[K, Unbalanced](compare)
}

// Make - create an initially empty tree with an explicit policy
func Make[K any, P Policy](compare func(a K, b K) int) *Tree[K, P] {
	return &Tree[K, P]{
		root:    nil,
		compare: compare,
		count:   0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, P]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, P]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, P]) Root() *Node[K] {
	return tree.root
}

// Height - number of levels in the tree, 0 when empty
func (tree *Tree[K, P]) Height() int {
	if nil == tree.root {
		return 0
	}
	if tree.balanced() {
		return tree.root.height
	}
	levels := 0
	walk(tree.root, preOrder, func(_ *Node[K], depth int) {
		if depth+1 > levels {
			levels = depth + 1
		}
	})
	return levels
}

// Key - read the key from a node item
func (p *Node[K]) Key() K {
	return p.key
}

// Height - cached height of the sub-tree rooted at this node; a leaf
// is 1 and an unbalanced tree always reports 0
func (p *Node[K]) Height() int {
	return p.height
}

// Balance - right sub-tree height minus left sub-tree height
func (p *Node[K]) Balance() int {
	return balance(p)
}

// Parent - return parent node of a node
func (p *Node[K]) Parent() *Node[K] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node[K]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// height of a possibly absent sub-tree
func height[K any](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// balance factor of a node
func balance[K any](p *Node[K]) int {
	return height(p.right) - height(p.left)
}

// recompute a node's height from its children
func fixHeight[K any](p *Node[K]) {
	p.height = 1 + max(height(p.left), height(p.right))
}
