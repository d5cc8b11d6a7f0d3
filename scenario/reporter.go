// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"io"
)

// Reporter - receives each step of a running scenario in order
type Reporter interface {
	Start(name string, variant string)
	Inserted(key int, added bool)
	Erased(key int, removed bool)
	Query(operation string, key int, result int, found bool)
	Dump(text string)
	Finish(result *Result)
}

// query operation names
const (
	QueryFind       = "find"
	QueryLowerBound = "lower bound"
	QueryUpperBound = "upper bound"
)

type textReporter struct {
	w io.Writer
}

// NewTextReporter - a reporter that writes one line per step
func NewTextReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

func (r *textReporter) Start(name string, variant string) {
	fmt.Fprintf(r.w, "scenario: %s  variant: %s\n", name, variant)
}

func (r *textReporter) Inserted(key int, added bool) {
	fmt.Fprintf(r.w, "insert(%d) = %t\n", key, added)
}

func (r *textReporter) Erased(key int, removed bool) {
	fmt.Fprintf(r.w, "erase(%d) = %t\n", key, removed)
}

func (r *textReporter) Query(operation string, key int, result int, found bool) {
	if found {
		fmt.Fprintf(r.w, "%s(%d) = %d\n", operation, key, result)
	} else {
		fmt.Fprintf(r.w, "%s(%d) = none\n", operation, key)
	}
}

func (r *textReporter) Dump(text string) {
	io.WriteString(r.w, text)
}

func (r *textReporter) Finish(result *Result) {
	fmt.Fprintf(r.w, "count: %d  height: %d  inserted: %d  erased: %d\n", result.Count, result.Height, result.Inserted, result.Erased)
}
