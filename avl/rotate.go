// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// put q into the slot of p: the child link of p's parent, or the root
func (tree *Tree[K, P]) replace(p *Node[K], q *Node[K]) {
	up := p.up
	if debugBuild && nil != up {
		assertChild(up, p)
	}
	switch {
	case nil == up:
		tree.root = q
	case up.left == p:
		up.left = q
	default:
		up.right = q
	}
	if nil != q {
		q.up = up
	}
}

// single RR rotation: p is right heavy, its right child is promoted
// returns the new sub-tree root
func (tree *Tree[K, P]) rotateLeft(p *Node[K]) *Node[K] {
	p1 := p.right
	if debugBuild && nil == p1 {
		assertFailed("rotate left: node: %v has no right child", p.key)
	}

	tree.replace(p, p1)

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p
	p.up = p1

	// p is now below p1 so must be first
	fixHeight(p)
	fixHeight(p1)
	return p1
}

// single LL rotation: p is left heavy, its left child is promoted
// returns the new sub-tree root
func (tree *Tree[K, P]) rotateRight(p *Node[K]) *Node[K] {
	p1 := p.left
	if debugBuild && nil == p1 {
		assertFailed("rotate right: node: %v has no left child", p.key)
	}

	tree.replace(p, p1)

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p
	p.up = p1

	fixHeight(p)
	fixHeight(p1)
	return p1
}

// double LR rotation: p is left heavy and its left child right heavy
func (tree *Tree[K, P]) rotateLeftRight(p *Node[K]) *Node[K] {
	tree.rotateLeft(p.left)
	return tree.rotateRight(p)
}

// double RL rotation: p is right heavy and its right child left heavy
func (tree *Tree[K, P]) rotateRightLeft(p *Node[K]) *Node[K] {
	tree.rotateRight(p.right)
	return tree.rotateLeft(p)
}

// restore the balance of p if it is out by two
// returns the root of the sub-tree that was at p
func (tree *Tree[K, P]) rebalance(p *Node[K]) *Node[K] {
	switch balance(p) {
	case -2:
		if balance(p.left) <= 0 {
			return tree.rotateRight(p)
		}
		return tree.rotateLeftRight(p)
	case +2:
		if balance(p.right) >= 0 {
			return tree.rotateLeft(p)
		}
		return tree.rotateRightLeft(p)
	}
	return p
}

// retrace: walk up from p recomputing heights and rotating
//
// after an insert the walk stops at the first node whose balance is
// zero since its height has not changed; after an erase it stops at
// the first node whose balance is ±1 since that sub-tree did not
// shrink
func (tree *Tree[K, P]) retrace(p *Node[K], inserted bool) {
	for nil != p {
		fixHeight(p)
		p = tree.rebalance(p)

		b := balance(p)
		if inserted && 0 == b {
			return
		}
		if !inserted && (-1 == b || +1 == b) {
			return
		}
		p = p.up
	}
}
