// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/scenario"
)

// collect the configured scenarios followed by those from each file
func loadScenarios(log *logger.L, theConfiguration *Configuration, extraFiles []string) ([]scenario.Scenario, error) {
	scenarios := append([]scenario.Scenario{}, theConfiguration.Scenarios...)

	files := append(append([]string{}, theConfiguration.ScenarioFiles...), extraFiles...)
	for _, fileName := range files {
		s, err := scenario.LoadYAML(fileName)
		if nil != err {
			log.Errorf("load: %q  error: %s", fileName, err)
			return nil, err
		}
		log.Infof("load: %q  scenarios: %d", fileName, len(s))
		scenarios = append(scenarios, s...)
	}
	return scenarios, nil
}

// run every scenario in turn, stopping at the first failure
//
// returns the number of scenarios completed
func runScenarios(log *logger.L, w io.Writer, scenarios []scenario.Scenario) (int, error) {

	created, freed := avl.Nodes()

	runner := scenario.New(log, scenario.NewTextReporter(w))
	for i := range scenarios {
		if i > 0 {
			fmt.Fprintln(w)
		}
		_, err := runner.Run(&scenarios[i])
		if nil != err {
			return i, fmt.Errorf("scenario: %q  error: %w", scenarios[i].Name, err)
		}
	}

	afterCreated, afterFreed := avl.Nodes()
	created = afterCreated - created
	freed = afterFreed - freed
	log.Infof("nodes created: %d  freed: %d", created, freed)
	if created != freed {
		log.Warnf("nodes still allocated: %d", created-freed)
	}

	return len(scenarios), nil
}
