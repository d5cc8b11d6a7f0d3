// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[K, P]) First() *Node[K] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K]) first() *Node[K] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, P]) Last() *Node[K] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K]) last() *Node[K] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K]) Next() *Node[K] {
	if p.right != nil {
		return p.right.first()
	}
	// climb until arriving from a left branch
	for up := p.up; up != nil; p, up = up, up.up {
		if up.left == p {
			return up
		}
	}
	return nil
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K]) Prev() *Node[K] {
	if p.left != nil {
		return p.left.last()
	}
	for up := p.up; up != nil; p, up = up, up.up {
		if up.right == p {
			return up
		}
	}
	return nil
}

// Keys - all keys in ascending order
func (tree *Tree[K, P]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}
