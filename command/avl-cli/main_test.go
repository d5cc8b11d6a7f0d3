// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const mixedKeys = "10,8,9,4,3,6,5,13,11"

// run the application and return its standard output
func run(t *testing.T, arguments ...string) (string, error) {
	w := bytes.Buffer{}
	e := bytes.Buffer{}
	app := newApp(&w, &e)
	args := append([]string{"avl-cli", "--log-directory", t.TempDir()}, arguments...)
	err := app.Run(args)
	return w.String(), err
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestBounds(t *testing.T) {
	out, err := run(t, "--keys", mixedKeys, "lower-bound", "2", "5", "11", "12")
	require.NoError(t, err, "lower-bound")
	assert.Equal(t, lines(
		"scenario: lower bound  variant: avl",
		"lower bound(2) = 3",
		"lower bound(5) = 5",
		"lower bound(11) = 11",
		"lower bound(12) = 13",
		"count: 9  height: 4  inserted: 9  erased: 0",
	), out, "lower-bound output")

	out, err = run(t, "-k", mixedKeys, "upper-bound", "2,5", "11", "13")
	require.NoError(t, err, "upper-bound")
	assert.Equal(t, lines(
		"scenario: upper bound  variant: avl",
		"upper bound(2) = 3",
		"upper bound(5) = 6",
		"upper bound(11) = 13",
		"upper bound(13) = none",
		"count: 9  height: 4  inserted: 9  erased: 0",
	), out, "upper-bound output")
}

func TestFindAndUpdate(t *testing.T) {
	out, err := run(t, "-k", "1,2,3", "find", "2", "7")
	require.NoError(t, err, "find")
	assert.Contains(t, out, "find(2) = 2\nfind(7) = none\n", "find output")

	out, err = run(t, "-k", "1,2,3", "insert", "3", "4")
	require.NoError(t, err, "insert")
	assert.Contains(t, out, "insert(3) = false\ninsert(4) = true\n", "insert output")
	assert.NotContains(t, out, "insert(1)", "initial keys reported")
	assert.Contains(t, out, "count: 4  height: 3  inserted: 4  erased: 0\n", "insert summary")

	out, err = run(t, "-k", mixedKeys, "erase", "12", "13", "8")
	require.NoError(t, err, "erase")
	assert.Contains(t, out, "erase(12) = false\nerase(13) = true\nerase(8) = true\n", "erase output")
	assert.Contains(t, out, "count: 7  height: 4  inserted: 9  erased: 2\n", "erase summary")
}

func TestDump(t *testing.T) {
	out, err := run(t, "-k", mixedKeys, "dump")
	require.NoError(t, err, "dump")
	assert.Contains(t, out, lines(
		"(8; 4; 0)",
		"\tL: (4; 3; 1)",
		"\t\tL: (3; 1; 0)",
		"\t\tR: (6; 2; -1)",
		"\t\t\tL: (5; 1; 0)",
		"\tR: (10; 3; 1)",
		"\t\tL: (9; 1; 0)",
		"\t\tR: (13; 2; -1)",
		"\t\t\tL: (11; 1; 0)",
	), "balanced dump")

	out, err = run(t, "--plain", "-k", mixedKeys, "dump")
	require.NoError(t, err, "plain dump")
	assert.Contains(t, out, "scenario: dump  variant: plain\n(10)\n\tL: (8)\n", "plain dump")
	assert.Contains(t, out, "count: 9  height: 5", "plain height")
}

func TestSequential(t *testing.T) {
	out, err := run(t, "sequential", "--count", "1024")
	require.NoError(t, err, "sequential")
	assert.Contains(t, out, "count: 1024  height: 11  inserted: 1024  erased: 0\n", "balanced")

	out, err = run(t, "-p", "sequential", "-c", "100")
	require.NoError(t, err, "plain sequential")
	assert.Contains(t, out, "count: 100  height: 100", "plain")

	_, err = run(t, "sequential")
	assert.True(t, errors.Is(err, fault.ErrInvalidCount), "missing count: %v", err)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "-k", mixedKeys, "insert")
	assert.Equal(t, fault.ErrMissingArguments, err, "no keys")

	_, err = run(t, "erase")
	assert.Equal(t, fault.ErrMissingArguments, err, "no erase keys")

	_, err = run(t, "sequential", "--count=-3")
	assert.True(t, errors.Is(err, fault.ErrInvalidCount), "negative count: %v", err)

	_, err = run(t, "find", "x")
	assert.True(t, errors.Is(err, fault.ErrInvalidKey), "bad argument: %v", err)

	_, err = run(t, "-k", "1,y", "dump")
	assert.True(t, errors.Is(err, fault.ErrInvalidKey), "bad initial key: %v", err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err, "version")
	assert.Equal(t, version+"\n", out, "version")
}

func TestLogging(t *testing.T) {
	dir := t.TempDir()

	// each run sets up and shuts down the logger again
	for i := 0; i < 3; i += 1 {
		w := bytes.Buffer{}
		app := newApp(&w, &bytes.Buffer{})
		err := app.Run([]string{"avl-cli", "-l", dir, "-k", "10,8,9", "find", "9"})
		require.NoError(t, err, "run: %d", i)
		assert.Equal(t, lines(
			"scenario: find  variant: avl",
			"find(9) = 9",
			"count: 3  height: 2  inserted: 3  erased: 0",
		), w.String(), "output: %d", i)
	}

	info, err := os.Stat(filepath.Join(dir, logFileName))
	require.NoError(t, err, "log file")
	assert.False(t, info.IsDir(), "log file is a directory")
}
