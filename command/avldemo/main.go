// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "scenario-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--watch] --config-file=FILE [--scenario-file=FILE...]", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	var output io.Writer = os.Stdout
	if len(options["quiet"]) > 0 {
		output = io.Discard
	}

	scenarioFiles := options["scenario-file"]

	scenarios, err := loadScenarios(log, theConfiguration, scenarioFiles)
	if nil != err {
		fault.Criticalf("load scenarios error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
	n, err := runScenarios(log, output, scenarios)
	if nil != err {
		fault.Criticalf("after %d scenarios: %s", n, err)
		exitwithstatus.Message("%s: %s", program, err)
	}
	log.Infof("completed scenarios: %d", n)

	if 0 == len(options["watch"]) {
		return
	}

	channel := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, logger.New(FileWatcherLoggerPrefix), channel)
	if nil != err {
		fault.Criticalf("file watcher setup error: %s", err)
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err = watcher.Start(); nil != err {
		fault.Criticalf("file watcher start error: %s", err)
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	// wait for CTRL-C SIGINT or SIGTERM
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

wait_loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if verbose {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			break wait_loop

		case <-channel.remove:
			fault.Criticalf("configuration: %q  error: %s", configurationFile, fault.ErrConfigurationFileRemove)
			exitwithstatus.Message("%s: %q  error: %s", program, configurationFile, fault.ErrConfigurationFileRemove)

		case <-channel.change:
			// logging settings stay as they were at startup
			c, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("reload: %q  error: %s", configurationFile, err)
				continue wait_loop
			}
			scenarios, err := loadScenarios(log, c, scenarioFiles)
			if nil != err {
				continue wait_loop
			}
			fmt.Fprintf(output, "\n--- reloaded: %s\n", configurationFile)
			n, err := runScenarios(log, output, scenarios)
			if nil != err {
				log.Errorf("after %d scenarios: %s", n, err)
				fmt.Fprintf(os.Stderr, "%s: %s\n", program, err)
				continue wait_loop
			}
			log.Infof("completed scenarios: %d", n)
		}
	}
}
