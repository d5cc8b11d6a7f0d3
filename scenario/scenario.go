// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"github.com/bitmark-inc/avltree/fault"
)

// tree variants
const (
	VariantAVL   = "avl"
	VariantPlain = "plain"
)

// Random - parameters for a seeded run of random keys
type Random struct {
	Count int   `gluamapper:"count" yaml:"count"`
	Limit int   `gluamapper:"limit" yaml:"limit"`
	Seed  int64 `gluamapper:"seed" yaml:"seed"`
	Erase int   `gluamapper:"erase" yaml:"erase"`
}

// Scenario - one scripted run against a fresh tree
//
// the steps are applied in field order: sequential, insert, random,
// the queries, the clone check, erase and finally the dump
type Scenario struct {
	Name        string `gluamapper:"name" yaml:"name"`
	Variant     string `gluamapper:"variant" yaml:"variant"`
	Sequential  int    `gluamapper:"sequential" yaml:"sequential"`
	Insert      []int  `gluamapper:"insert" yaml:"insert"`
	Random      Random `gluamapper:"random" yaml:"random"`
	Find        []int  `gluamapper:"find" yaml:"find"`
	LowerBound  []int  `gluamapper:"lower_bound" yaml:"lower_bound"`
	UpperBound  []int  `gluamapper:"upper_bound" yaml:"upper_bound"`
	CloneInsert []int  `gluamapper:"clone_insert" yaml:"clone_insert"`
	CloneErase  []int  `gluamapper:"clone_erase" yaml:"clone_erase"`
	Erase       []int  `gluamapper:"erase" yaml:"erase"`
	Dump        bool   `gluamapper:"dump" yaml:"dump"`
}

// Result - summary of a completed scenario
type Result struct {
	Name     string
	Variant  string
	Count    int
	Height   int
	Inserted int
	Erased   int
}

// VariantName - the effective variant, an empty variant means avl
func (s *Scenario) VariantName() string {
	if "" == s.Variant {
		return VariantAVL
	}
	return s.Variant
}

// Validate - check the scenario parameters before running
func (s *Scenario) Validate() error {
	switch s.VariantName() {
	case VariantAVL, VariantPlain:
	default:
		return fault.ErrInvalidVariant
	}

	if s.Sequential < 0 {
		return fault.ErrInvalidSequentialCount
	}

	r := s.Random
	if r.Count < 0 {
		return fault.ErrInvalidRandomCount
	}
	if r.Erase < 0 || r.Erase > r.Count {
		return fault.ErrInvalidRandomErase
	}
	if r.Count > 0 && r.Limit <= 0 {
		return fault.ErrInvalidRandomLimit
	}
	return nil
}

// hasClone - true if the clone check has anything to do
func (s *Scenario) hasClone() bool {
	return len(s.CloneInsert) > 0 || len(s.CloneErase) > 0
}
