// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the tree structure
//
// checks parent pointers, key order and node count, and for a
// balanced tree the cached heights and the balance of every node.
// Returns nil if consistent.
func (tree *Tree[K, P]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fmt.Errorf("%w: root: %v", fault.ErrTreeParent, tree.root.key)
	}

	balanced := tree.balanced()
	count := 0

	var err error
	walk(tree.root, postOrder, func(p *Node[K], _ int) {
		count += 1
		if nil != err {
			return
		}
		err = tree.checkNode(p, balanced)
	})
	if nil != err {
		return err
	}

	// in-order keys must be strictly increasing
	var previous *Node[K]
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			return fmt.Errorf("%w: %v then %v", fault.ErrTreeOrder, previous.key, p.key)
		}
		previous = p
	}

	if count != tree.count {
		return fmt.Errorf("%w: actual: %d  expected: %d", fault.ErrTreeCount, count, tree.count)
	}
	return nil
}

// internal: consistency of a single node with its children
func (tree *Tree[K, P]) checkNode(p *Node[K], balanced bool) error {
	if nil != p.left {
		if p.left.up != p {
			return fmt.Errorf("%w: node: %v", fault.ErrTreeParent, p.left.key)
		}
		if tree.compare(p.left.key, p.key) >= 0 {
			return fmt.Errorf("%w: left: %v  node: %v", fault.ErrTreeOrder, p.left.key, p.key)
		}
	}
	if nil != p.right {
		if p.right.up != p {
			return fmt.Errorf("%w: node: %v", fault.ErrTreeParent, p.right.key)
		}
		if tree.compare(p.right.key, p.key) <= 0 {
			return fmt.Errorf("%w: right: %v  node: %v", fault.ErrTreeOrder, p.right.key, p.key)
		}
	}
	if !balanced {
		if 0 != p.height {
			return fmt.Errorf("%w: node: %v  height: %d", fault.ErrTreeHeight, p.key, p.height)
		}
		return nil
	}

	expected := 1 + max(height(p.left), height(p.right))
	if expected != p.height {
		return fmt.Errorf("%w: node: %v  actual: %d  expected: %d", fault.ErrTreeHeight, p.key, p.height, expected)
	}
	if b := balance(p); b < -1 || b > 1 {
		return fmt.Errorf("%w: node: %v  balance: %d", fault.ErrTreeBalance, p.key, b)
	}
	return nil
}
