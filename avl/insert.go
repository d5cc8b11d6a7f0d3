// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a key into the tree
//
// returns the node holding key; if the key is already present that
// node is returned and the tree is unchanged
func (tree *Tree[K, P]) Insert(key K) *Node[K] {
	leaf := 0
	if tree.balanced() {
		leaf = 1
	}

	if nil == tree.root {
		tree.root = newNode(key, nil, leaf)
		tree.count += 1
		return tree.root
	}

	lb := tree.lowerBound(key, tree.root)
	if nil != lb && 0 == tree.compare(lb.key, key) {
		return lb
	}

	// the new node goes either immediately left of the lower bound
	// or as the right child of the rightmost node before it
	var p *Node[K]
	switch {
	case nil == lb: // no key >= key, so append to the rightmost node
		p = tree.root.last()
	case nil == lb.left:
		p = lb
	default:
		p = lb.left.last()
	}

	q := newNode(key, p, leaf)
	if p == lb {
		p.left = q
	} else {
		p.right = q
	}
	tree.count += 1

	if tree.balanced() {
		tree.retrace(p, true)
	}
	return q
}
