// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
	"github.com/bitmark-inc/avltree/util"
)

// the initial keys are inserted silently, everything after them is
// passed on
type initialReporter struct {
	scenario.Reporter
	skip int
}

func (r *initialReporter) Inserted(key int, added bool) {
	if r.skip > 0 {
		r.skip -= 1
		return
	}
	r.Reporter.Inserted(key, added)
}

// a scenario starting from the --keys list
func newScenario(m *metadata, name string) *scenario.Scenario {
	s := &scenario.Scenario{
		Name:    name,
		Variant: scenario.VariantAVL,
		Insert:  append([]int{}, m.keys...),
	}
	if m.plain {
		s.Variant = scenario.VariantPlain
	}
	return s
}

// run with the text reporter, verbose mode also shows the initial inserts
func runScenario(m *metadata, s *scenario.Scenario) error {
	var reporter scenario.Reporter = scenario.NewTextReporter(m.w)
	if !m.verbose {
		reporter = &initialReporter{
			Reporter: reporter,
			skip:     len(m.keys),
		}
	}
	_, err := scenario.New(m.log, reporter).Run(s)
	return err
}

// the command line keys, at least one is required
func argumentKeys(c *cli.Context) ([]int, error) {
	keys, err := util.ParseKeys(c.Args()...)
	if nil != err {
		return nil, err
	}
	if 0 == len(keys) {
		return nil, fault.ErrMissingArguments
	}
	return keys, nil
}
