// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow non-recursive traversal through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree is a set of keys ordered by a comparison function.  The
// balancing is selected by a type parameter: Balanced keeps a height
// in every node and rotates after each insert or erase, Unbalanced is
// a plain binary search tree sharing the same search, splice and
// traversal code.
//
// Nodes returned by Insert, Find and the bound queries are handles
// into the tree; a handle stays valid until its own key is erased or
// the tree is cleared.  Rotations relink nodes, they never copy keys,
// so other handles are not affected.
package avl
