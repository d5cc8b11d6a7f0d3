// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c)
	if nil != err {
		return err
	}

	s := newScenario(m, "insert")
	s.Insert = append(s.Insert, keys...)
	s.Dump = m.verbose

	return runScenario(m, s)
}

func runErase(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c)
	if nil != err {
		return err
	}

	s := newScenario(m, "erase")
	s.Erase = keys
	s.Dump = m.verbose

	return runScenario(m, s)
}
