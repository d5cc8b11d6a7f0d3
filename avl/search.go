// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a specific item, nil if not present
func (tree *Tree[K, P]) Find(key K) *Node[K] {
	lb := tree.lowerBound(key, tree.root)
	if nil != lb && 0 == tree.compare(lb.key, key) {
		return lb
	}
	return nil
}

// Contains - true if the key is in the tree
func (tree *Tree[K, P]) Contains(key K) bool {
	return nil != tree.Find(key)
}

// LowerBound - the node with the smallest key >= key, or nil
func (tree *Tree[K, P]) LowerBound(key K) *Node[K] {
	return tree.lowerBound(key, tree.root)
}

// UpperBound - the node with the smallest key > key, or nil
func (tree *Tree[K, P]) UpperBound(key K) *Node[K] {
	return tree.upperBound(key, tree.root)
}

// internal: lower bound within the sub-tree at p
func (tree *Tree[K, P]) lowerBound(key K, p *Node[K]) *Node[K] {
	candidate := (*Node[K])(nil)
	for nil != p {
		switch c := tree.compare(p.key, key); {
		case c < 0: // p.key < key
			p = p.right
		case c > 0: // p.key > key
			candidate = p
			p = p.left
		default:
			return p
		}
	}
	return candidate
}

// internal: upper bound within the sub-tree at p
//
// equal keys go right, so this finds the in-order successor of a node
// holding exactly key
func (tree *Tree[K, P]) upperBound(key K, p *Node[K]) *Node[K] {
	candidate := (*Node[K])(nil)
	for nil != p {
		if tree.compare(p.key, key) <= 0 { // p.key <= key
			p = p.right
		} else {
			candidate = p
			p = p.left
		}
	}
	return candidate
}
