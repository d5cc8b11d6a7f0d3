// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - removes a specific item from the tree
//
// returns false if the key was not present
func (tree *Tree[K, P]) Erase(key K) bool {
	q := tree.Find(key)
	if nil == q {
		return false
	}

	// where the retrace starts
	var p *Node[K]

	if nil == q.left || nil == q.right {
		// promote the only child, or nil for a leaf
		r := q.left
		if nil == r {
			r = q.right
		}
		p = q.up
		tree.replace(q, r)
	} else {
		// the successor has no left child
		r := tree.upperBound(q.key, q.right)
		if debugBuild && (nil == r || nil != r.left) {
			assertFailed("erase: node: %v has invalid successor", q.key)
		}

		if r == q.right {
			p = r
		} else {
			// detach the successor, its right sub-tree takes its place
			p = r.up
			p.left = r.right
			if nil != r.right {
				r.right.up = p
			}
			r.right = q.right
			r.right.up = r
		}

		r.left = q.left
		r.left.up = r
		r.height = q.height
		tree.replace(q, r)
	}

	freeNode(q)
	tree.count -= 1

	if tree.balanced() {
		tree.retrace(p, false)
	}
	return true
}

// Clear - remove all nodes from the tree
func (tree *Tree[K, P]) Clear() {
	walk(tree.root, postOrder, func(node *Node[K], _ int) {
		freeNode(node)
	})
	tree.root = nil
	tree.count = 0
}
