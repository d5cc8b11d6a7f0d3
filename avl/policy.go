// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Policy - selects whether a tree keeps itself balanced
//
// only the types in this package satisfy it
type Policy interface {
	augmented() bool
}

// Balanced - height augmented AVL tree
type Balanced struct{}

// Unbalanced - plain binary search tree, no heights and no rotations
type Unbalanced struct{}

func (Balanced) augmented() bool   { return true }
func (Unbalanced) augmented() bool { return false }

// true if the tree policy maintains heights
func (tree *Tree[K, P]) balanced() bool {
	var p P
	return p.augmented()
}
