// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors that
// carry detail are wrapped with %w and still match with errors.Is or
// the IsErrXxx class checks.
//
// Also provides the last-resort logging used when the program must
// abort because an internal structure is corrupt.
package fault
