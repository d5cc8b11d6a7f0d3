// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildTree(keys ...int) *Tree[int, Balanced] {
	tree := New[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func collect(top *Node[int], o order) ([]int, []int) {
	keys := []int{}
	depths := []int{}
	walk(top, o, func(node *Node[int], depth int) {
		keys = append(keys, node.key)
		depths = append(depths, depth)
	})
	return keys, depths
}

func TestWalkOrder(t *testing.T) {
	tree := buildTree(10, 8, 9, 4, 3, 6, 5, 13, 11)

	keys, depths := collect(tree.root, preOrder)
	assert.Equal(t, []int{8, 4, 3, 6, 5, 10, 9, 13, 11}, keys, "pre order keys")
	assert.Equal(t, []int{0, 1, 2, 2, 3, 1, 2, 2, 3}, depths, "pre order depths")

	keys, depths = collect(tree.root, postOrder)
	assert.Equal(t, []int{3, 5, 6, 4, 9, 11, 13, 10, 8}, keys, "post order keys")
	assert.Equal(t, []int{2, 3, 2, 1, 2, 3, 2, 1, 0}, depths, "post order depths")
}

func TestWalkInteriorTop(t *testing.T) {
	tree := buildTree(10, 8, 9, 4, 3, 6, 5, 13, 11)
	top := tree.Find(4)

	keys, depths := collect(top, preOrder)
	assert.Equal(t, []int{4, 3, 6, 5}, keys, "sub-tree keys")
	assert.Equal(t, []int{0, 1, 1, 2}, depths, "sub-tree depths")

	keys, _ = collect(top, postOrder)
	assert.Equal(t, []int{3, 5, 6, 4}, keys, "sub-tree post order")

	keys, _ = collect(nil, preOrder)
	assert.Empty(t, keys, "empty walk")
}

func TestCloneSubTree(t *testing.T) {
	tree := buildTree(10, 8, 9, 4, 3, 6, 5, 13, 11)
	top := tree.Find(10)

	dup, count := clone(top)
	assert.Equal(t, 4, count, "count")
	assert.Nil(t, dup.up, "copy has a parent")
	assert.Equal(t, top.height, dup.height, "height")

	original, _ := collect(top, preOrder)
	copied, _ := collect(dup, preOrder)
	assert.Equal(t, original, copied, "keys")
	assert.Same(t, dup, dup.right.up, "parent link")
}

func TestRetraceAfterInsert(t *testing.T) {
	tree := buildTree(3, 2)
	assert.Equal(t, -1, balance(tree.root), "left heavy")

	// a left-left case rotates right at the root
	tree.Insert(1)
	assert.Equal(t, 2, tree.root.key, "root")
	assert.Equal(t, 2, tree.root.height, "height")
	assert.Equal(t, 1, tree.root.left.key, "left")
	assert.Equal(t, 3, tree.root.right.key, "right")

	// a right-left case needs a double rotation
	tree = buildTree(1, 3, 2)
	assert.Equal(t, 2, tree.root.key, "double rotation root")
	assert.Nil(t, tree.root.up, "root parent")
	assert.Same(t, tree.root, tree.root.left.up, "left parent")
	assert.Same(t, tree.root, tree.root.right.up, "right parent")
	assert.NoError(t, tree.Check(), "check")
}

func TestRetraceStopsOnHeightChange(t *testing.T) {
	tree := buildTree(4, 2, 6, 1, 3, 5, 7)

	// removing one leaf leaves the sub-tree height unchanged
	tree.Erase(7)
	assert.Equal(t, 4, tree.root.key, "root")
	assert.Equal(t, 3, tree.root.height, "height")
	assert.Equal(t, 0, balance(tree.root), "root balance")
	assert.Equal(t, -1, balance(tree.root.right), "right balance")

	// removing the sibling shortens the right side
	tree.Erase(5)
	assert.Equal(t, 4, tree.root.key, "root")
	assert.Equal(t, 3, tree.root.height, "height")
	assert.Equal(t, -1, balance(tree.root), "root balance")
	assert.Equal(t, 1, tree.root.right.height, "right height")
	assert.NoError(t, tree.Check(), "check")
}

// a height above the point where the retrace stops is never touched,
// so a marker value there shows how far the walk went
const untouchedHeight = 99

func TestRetraceInsertStopsAtBalanced(t *testing.T) {
	tree := buildTree(4, 2, 6, 1)
	tree.root.height = untouchedHeight

	// 2 becomes balanced so its height is unchanged
	tree.Insert(3)
	assert.Equal(t, untouchedHeight, tree.root.height, "root visited")
	assert.Equal(t, 2, tree.Find(2).height, "height of 2")
	assert.Equal(t, 0, balance(tree.Find(2)), "balance of 2")

	tree.root.height = 3
	assert.NoError(t, tree.Check(), "check")
}

func TestRetraceInsertContinues(t *testing.T) {
	tree := buildTree(4, 2, 6)
	tree.root.height = untouchedHeight

	// 2 grows so the root must be recomputed
	tree.Insert(1)
	assert.Equal(t, 3, tree.root.height, "root not visited")
	assert.Equal(t, -1, balance(tree.root), "root balance")
	assert.NoError(t, tree.Check(), "check")
}

func TestRetraceEraseStopsAtUnbalanced(t *testing.T) {
	tree := buildTree(4, 2, 6, 1, 3, 5, 7)
	tree.root.height = untouchedHeight

	// 6 keeps its height with a single child
	tree.Erase(7)
	assert.Equal(t, untouchedHeight, tree.root.height, "root visited")
	assert.Equal(t, 2, tree.Find(6).height, "height of 6")
	assert.Equal(t, -1, balance(tree.Find(6)), "balance of 6")

	tree.root.height = 3
	assert.NoError(t, tree.Check(), "check")
}

func TestRetraceEraseContinues(t *testing.T) {
	tree := buildTree(4, 2, 6, 1, 3, 5, 7)
	tree.Erase(7)
	tree.root.height = untouchedHeight

	// 6 shrinks so the root must be recomputed
	tree.Erase(5)
	assert.Equal(t, 3, tree.root.height, "root not visited")
	assert.Equal(t, -1, balance(tree.root), "root balance")
	assert.NoError(t, tree.Check(), "check")
}
