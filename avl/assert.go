// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// a broken link means the tree itself is corrupt, so there is no
// error to return, just abort
func assertFailed(format string, arguments ...interface{}) {
	fault.Panicf("avl: "+format, arguments...)
}

// check that child really is a child of up
func assertChild[K any](up *Node[K], child *Node[K]) {
	if nil == up {
		assertFailed("node: %v has no parent", child.key)
	} else if up.left != child && up.right != child {
		assertFailed("node: %v is not a child of: %v", child.key, up.key)
	}
}
