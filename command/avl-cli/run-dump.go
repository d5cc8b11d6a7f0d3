// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
)

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := newScenario(m, "dump")
	s.Dump = true

	return runScenario(m, s)
}

func runSequential(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidCount, count)
	}

	s := newScenario(m, "sequential")
	s.Sequential = count
	s.Dump = c.Bool("dump")

	return runScenario(m, s)
}
