// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/util"
)

type metadata struct {
	plain   bool
	keys    []int
	verbose bool
	log     *logger.L
	w       io.Writer
}

// the logger rejects anything smaller
const (
	logFileName  = "avl-cli.log"
	logFileSize  = 1048576
	logFileCount = 10
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "apply operations to a tree built from a list of keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "plain, p",
			Usage: " use a tree without balancing",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: " initial comma separated `KEYS`",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: os.TempDir(),
			Usage: " write avl-cli.log to `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "insert keys and show which were added",
			ArgsUsage: "KEY...",
			Action:    runInsert,
		},
		{
			Name:      "erase",
			Usage:     "erase keys and show which were removed",
			ArgsUsage: "KEY...",
			Action:    runErase,
		},
		{
			Name:      "find",
			Usage:     "look up keys",
			ArgsUsage: "KEY...",
			Action:    runFind,
		},
		{
			Name:      "lower-bound",
			Usage:     "smallest key not less than each argument",
			ArgsUsage: "KEY...",
			Action:    runLowerBound,
		},
		{
			Name:      "upper-bound",
			Usage:     "smallest key greater than each argument",
			ArgsUsage: "KEY...",
			Action:    runUpperBound,
		},
		{
			Name:   "dump",
			Usage:  "print the tree structure",
			Action: runDump,
		},
		{
			Name:  "sequential",
			Usage: "insert 1..N and show the resulting height",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 0,
					Usage: "*number of keys `N`",
				},
				cli.BoolFlag{
					Name:  "dump, d",
					Usage: " also print the tree structure",
				},
			},
			Action: runSequential,
		},
		{
			Name:   "version",
			Usage:  "display avl-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		// to suppress logging setup for certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		keys, err := util.ParseKeys(c.GlobalString("keys"))
		if nil != err {
			return err
		}

		verbose := c.GlobalBool("verbose")
		logging := logger.Configuration{
			Directory: c.GlobalString("log-directory"),
			File:      logFileName,
			Size:      logFileSize,
			Count:     logFileCount,
			Console:   verbose,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		}
		if verbose {
			logging.Levels[logger.DefaultTag] = "info"
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			plain:   c.GlobalBool("plain"),
			keys:    keys,
			verbose: verbose,
			log:     logger.New("main"),
			w:       c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	return app
}
