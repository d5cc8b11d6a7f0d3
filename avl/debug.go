// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build avl_debug

package avl

// internal consistency checks are enabled by: go build -tags avl_debug
const debugBuild = true
