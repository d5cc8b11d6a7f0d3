// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scenario - scripted sequences of tree operations
//
// A scenario names the keys to insert, the queries to make and the
// keys to erase.  The Runner applies them to a tree of the selected
// variant, verifies the tree after every change and reports each
// step through a Reporter.
//
// Scenarios come from the Lua configuration of the demonstration
// program or from YAML files.
package scenario
