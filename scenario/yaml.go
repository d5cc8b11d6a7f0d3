// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadYAML - read a list of scenarios from a YAML file
//
// every scenario is validated, the first invalid one is returned as
// an error that names the file and the scenario
func LoadYAML(fileName string) ([]Scenario, error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	f := yamlFile{}
	err = yaml.Unmarshal(data, &f)
	if nil != err {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if err := s.Validate(); nil != err {
			return nil, fmt.Errorf("%s: scenario[%d] %q: %w", fileName, i, s.Name, err)
		}
	}
	return f.Scenarios, nil
}
