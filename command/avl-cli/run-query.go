// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runFind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c)
	if nil != err {
		return err
	}

	s := newScenario(m, "find")
	s.Find = keys

	return runScenario(m, s)
}

func runLowerBound(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c)
	if nil != err {
		return err
	}

	s := newScenario(m, "lower bound")
	s.LowerBound = keys

	return runScenario(m, s)
}

func runUpperBound(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := argumentKeys(c)
	if nil != err {
		return err
	}

	s := newScenario(m, "upper bound")
	s.UpperBound = keys

	return runScenario(m, s)
}
