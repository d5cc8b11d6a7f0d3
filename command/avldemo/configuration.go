// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "avldemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	ScenarioFiles []string             `gluamapper:"scenario_files" json:"scenario_files"`
	Scenarios     []scenario.Scenario  `gluamapper:"scenarios" json:"scenarios"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	// absolute path to the main directory
	configurationDirectory, err := util.ConfigurationDirectory(configurationFileName)
	if nil != err {
		return nil, err
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.DataDirectory = util.EnsureAbsolute(configurationDirectory, options.DataDirectory)

	// the log directory is relative to the data directory
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// scenario files are relative to the configuration file
	for i, f := range options.ScenarioFiles {
		f = util.EnsureAbsolute(configurationDirectory, f)
		if !util.EnsureFileExists(f) {
			return nil, fmt.Errorf("%w: %q", fault.ErrScenarioFileNotFound, f)
		}
		options.ScenarioFiles[i] = f
	}

	for i := range options.Scenarios {
		s := &options.Scenarios[i]
		if err := s.Validate(); nil != err {
			return nil, fmt.Errorf("scenario[%d] %q: %w", i, s.Name, err)
		}
	}

	return options, nil
}
