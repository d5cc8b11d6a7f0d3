// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// to control the order of the depth first walk
type order int

const (
	preOrder  order = iota
	postOrder order = iota
)

// which children of the current node have already been walked
type visited int

const (
	visitedNone  visited = iota
	visitedLeft  visited = iota
	visitedRight visited = iota
)

// walk - non-recursive depth first walk of the sub-tree at top
//
// only the parent pointers are used to climb back up, so no stack is
// required.  top is treated as having no parent, so top can be an
// interior node.  In post order fn is called after the walk has
// finished with the node, so fn may release it.
func walk[K any](top *Node[K], o order, fn func(node *Node[K], depth int)) {
	state := visitedNone
	depth := 0

	for p := top; nil != p; {
		if preOrder == o && visitedNone == state {
			fn(p, depth)
		}
		if nil != p.left && visitedNone == state {
			p = p.left
			depth += 1
		} else if nil != p.right && visitedRight != state {
			p = p.right
			state = visitedNone
			depth += 1
		} else {
			up := p.up
			if p == top {
				up = nil
			} else {
				if debugBuild {
					assertChild(up, p)
				}
				if up.left == p {
					state = visitedLeft
				} else {
					state = visitedRight
				}
			}
			if postOrder == o {
				fn(p, depth)
			}
			depth -= 1
			p = up
		}
	}
}

// clone - create a copy of the sub-tree at top
//
// the source is walked in the same way as walk and the copy follows in
// lock-step: each time the source descends a new node is attached as
// the corresponding child of the current copy node
func clone[K any](top *Node[K]) (*Node[K], int) {
	if nil == top {
		return nil, 0
	}

	dup := newNode(top.key, nil, top.height)
	count := 1

	state := visitedNone
	q := dup
	for p := top; nil != p; {
		if nil != p.left && visitedNone == state {
			p = p.left
			q.left = newNode(p.key, q, p.height)
			q = q.left
			count += 1
		} else if nil != p.right && visitedRight != state {
			p = p.right
			q.right = newNode(p.key, q, p.height)
			q = q.right
			state = visitedNone
			count += 1
		} else {
			if p == top {
				break
			}
			if p.up.left == p {
				state = visitedLeft
			} else {
				state = visitedRight
			}
			p = p.up
			q = q.up
		}
	}
	return dup, count
}
