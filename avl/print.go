// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// Dump - write one line per node in pre-order
//
// each line is indented by one tab per level and tagged "L: " or
// "R: " for the side of its parent, followed by (key; height;
// balance) for a balanced tree or (key) for an unbalanced tree.
// Intended for debugging, the format is not stable.
func (tree *Tree[K, P]) Dump(w io.Writer) error {
	balanced := tree.balanced()

	var err error
	walk(tree.root, preOrder, func(node *Node[K], depth int) {
		if nil != err {
			return
		}
		side := ""
		if nil != node.up {
			if node.up.left == node {
				side = "L: "
			} else {
				side = "R: "
			}
		}
		indent := strings.Repeat("\t", depth)
		if balanced {
			_, err = fmt.Fprintf(w, "%s%s(%v; %d; %d)\n", indent, side, node.key, node.height, balance(node))
		} else {
			_, err = fmt.Fprintf(w, "%s%s(%v)\n", indent, side, node.key)
		}
	})
	return err
}

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree, the
// right sub-tree is above its parent and the left below
//
// returns the maximum depth of the tree
func (tree *Tree[K, P]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root, tree.balanced())
}

// internal print - returns the maximum depth of the tree
func printTree[K any](w io.Writer, tree *Node[K], prefix string, br branch, balanced bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, balanced)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	if balanced {
		fmt.Fprintf(w, "%v ^%v %+2d/%d\n", tree.key, up, balance(tree), tree.height)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.key, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, balanced)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
