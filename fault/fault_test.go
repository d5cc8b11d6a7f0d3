// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrExistsOne       = fault.ExistsError("exists one ")
	ErrExistsTwo       = fault.ExistsError("exists two")
	ErrInconsistentOne = fault.InconsistentError("inconsistent one")
	ErrInconsistentTwo = fault.InconsistentError("inconsistent two")
	ErrInvalidOne      = fault.InvalidError("invalid one")
	ErrInvalidTwo      = fault.InvalidError("invalid two")
	ErrNotFoundOne     = fault.NotFoundError("not found one")
	ErrNotFoundTwo     = fault.NotFoundError("not found two")
	ErrProcessOne      = fault.ProcessError("process one")
	ErrProcessTwo      = fault.ProcessError("process two")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err          error
		exists       bool
		inconsistent bool
		invalid      bool
		notFound     bool
		process      bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInconsistentOne, false, true, false, false, false},
		{ErrInconsistentTwo, false, true, false, false, false},
		{ErrInvalidOne, false, false, true, false, false},
		{ErrInvalidTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fmt.Errorf("%w: node: 5", fault.ErrTreeOrder), false, true, false, false, false},
		{fmt.Errorf("scenario: %q: %w", "A", fault.ErrInvalidVariant), false, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInconsistent(err) != e.inconsistent {
			t.Errorf("%d: expected 'inconsistent' == %v for err = %v", i, e.inconsistent, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "avl: node: 7 is corrupt", func() {
		fault.Panicf("avl: node: %d is corrupt", 7)
	}, "wrong panic value")
}

// the logged location is the line that called into fault
func TestLoggedLocation(t *testing.T) {
	dir := t.TempDir()
	err := logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "fault.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	require.NoError(t, err, "logger initialise")

	require.NoError(t, fault.Initialise(), "fault initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")

	fault.Criticalf("tree: %s", "first")
	assert.Panics(t, func() {
		fault.Panicf("tree: %s", "second")
	}, "no panic")

	fault.Finalise()
	logger.Finalise()

	b, err := os.ReadFile(filepath.Join(dir, "fault.log"))
	require.NoError(t, err, "read log")
	text := string(b)
	assert.Regexp(t, `fault_test\.go":\d+\) tree: first`, text, "criticalf location")
	assert.Regexp(t, `fault_test\.go":\d+\) tree: second`, text, "panicf location")
	assert.NotRegexp(t, `log\.go":\d+\) tree:`, text, "wrapper location logged")
}
