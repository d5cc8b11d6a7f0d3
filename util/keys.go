// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// ParseKeys - convert arguments to integer keys
//
// each argument may itself be a comma separated list, blank items are
// ignored so "10,8, 9" and "10" "8" "9" give the same result
func ParseKeys(arguments ...string) ([]int, error) {
	keys := make([]int, 0, len(arguments))
	for _, a := range arguments {
		for _, s := range strings.Split(a, ",") {
			s = strings.TrimSpace(s)
			if "" == s {
				continue
			}
			k, err := strconv.Atoi(s)
			if nil != err {
				return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKey, s)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}
