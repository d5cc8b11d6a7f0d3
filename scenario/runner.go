// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Runner - applies scenarios to fresh trees
type Runner struct {
	log      *logger.L
	reporter Reporter
}

// New - create a runner that logs to log and reports to reporter
func New(log *logger.L, reporter Reporter) *Runner {
	return &Runner{
		log:      log,
		reporter: reporter,
	}
}

// Run - execute one scenario
//
// the tree is checked after every insert and erase, the first
// inconsistency stops the run
func (r *Runner) Run(s *Scenario) (*Result, error) {
	if err := s.Validate(); nil != err {
		r.log.Errorf("scenario: %q  error: %s", s.Name, err)
		return nil, err
	}

	variant := s.VariantName()
	r.log.Infof("start scenario: %q  variant: %s", s.Name, variant)
	r.reporter.Start(s.Name, variant)

	var result *Result
	var err error
	switch variant {
	case VariantPlain:
		result, err = run(r, s, avl.NewUnbalanced[int]())
	default:
		result, err = run(r, s, avl.New[int]())
	}
	if nil != err {
		return nil, err
	}

	result.Name = s.Name
	result.Variant = variant
	r.reporter.Finish(result)
	r.log.Infof("finish scenario: %q  count: %d  height: %d", s.Name, result.Count, result.Height)
	return result, nil
}

// run - the steps of a scenario for a particular tree policy
func run[P avl.Policy](r *Runner, s *Scenario, tree *avl.Tree[int, P]) (*Result, error) {
	defer tree.Clear()

	result := &Result{}

	insert := func(key int, report bool) error {
		n := tree.Count()
		tree.Insert(key)
		added := tree.Count() != n
		if added {
			result.Inserted += 1
		}
		if report {
			r.reporter.Inserted(key, added)
		}
		return r.check(s, tree, "insert", key)
	}

	erase := func(key int) error {
		removed := tree.Erase(key)
		if removed {
			result.Erased += 1
		}
		r.reporter.Erased(key, removed)
		return r.check(s, tree, "erase", key)
	}

	if s.Sequential > 0 {
		r.log.Debugf("sequential: 1..%d", s.Sequential)
	}
	for key := 1; key <= s.Sequential; key += 1 {
		if err := insert(key, false); nil != err {
			return nil, err
		}
	}

	for _, key := range s.Insert {
		if err := insert(key, true); nil != err {
			return nil, err
		}
	}

	if s.Random.Count > 0 {
		r.log.Debugf("random: count: %d  limit: %d  seed: %d", s.Random.Count, s.Random.Limit, s.Random.Seed)
		rng := rand.New(rand.NewSource(s.Random.Seed))
		drawn := make([]int, s.Random.Count)
		for i := range drawn {
			drawn[i] = rng.Intn(s.Random.Limit)
			if err := insert(drawn[i], true); nil != err {
				return nil, err
			}
		}
		for _, key := range drawn[:s.Random.Erase] {
			if err := erase(key); nil != err {
				return nil, err
			}
		}
	}

	for _, key := range s.Find {
		node := tree.Find(key)
		reportQuery(r.reporter, QueryFind, key, node)
	}
	for _, key := range s.LowerBound {
		node := tree.LowerBound(key)
		reportQuery(r.reporter, QueryLowerBound, key, node)
	}
	for _, key := range s.UpperBound {
		node := tree.UpperBound(key)
		reportQuery(r.reporter, QueryUpperBound, key, node)
	}

	if s.hasClone() {
		if err := cloneCheck(r, s, tree); nil != err {
			return nil, err
		}
	}

	for _, key := range s.Erase {
		if err := erase(key); nil != err {
			return nil, err
		}
	}

	if s.Dump {
		text, err := dump(tree)
		if nil != err {
			return nil, err
		}
		r.reporter.Dump(text)
	}

	result.Count = tree.Count()
	result.Height = tree.Height()
	return result, nil
}

// cloneCheck - mutate a clone and confirm the original is unchanged
func cloneCheck[P avl.Policy](r *Runner, s *Scenario, tree *avl.Tree[int, P]) error {
	before, err := dump(tree)
	if nil != err {
		return err
	}

	c := tree.Clone()
	defer c.Clear()

	if err := r.check(s, c, "clone", 0); nil != err {
		return err
	}
	for _, key := range s.CloneInsert {
		c.Insert(key)
		if err := r.check(s, c, "clone insert", key); nil != err {
			return err
		}
	}
	for _, key := range s.CloneErase {
		c.Erase(key)
		if err := r.check(s, c, "clone erase", key); nil != err {
			return err
		}
	}

	after, err := dump(tree)
	if nil != err {
		return err
	}
	if before != after {
		r.log.Criticalf("scenario: %q  original changed by clone", s.Name)
		r.log.Debugf("before:\n%s", before)
		r.log.Debugf("after:\n%s", after)
		return fault.ErrCloneChangedOriginal
	}
	r.log.Debugf("clone: inserted: %d  erased: %d  clone count: %d", len(s.CloneInsert), len(s.CloneErase), c.Count())
	return nil
}

type checker interface {
	Check() error
}

// check - verify the tree after a step, logging the first failure
func (r *Runner) check(s *Scenario, tree checker, step string, key int) error {
	err := tree.Check()
	if nil == err {
		return nil
	}
	r.log.Criticalf("scenario: %q  %s(%d)  error: %s", s.Name, step, key, err)
	return fmt.Errorf("%w: %s(%d): %v", fault.ErrInvariantFailed, step, key, err)
}

func reportQuery(reporter Reporter, operation string, key int, node *avl.Node[int]) {
	if nil == node {
		reporter.Query(operation, key, 0, false)
	} else {
		reporter.Query(operation, key, node.Key(), true)
	}
}

func dump[P avl.Policy](tree *avl.Tree[int, P]) (string, error) {
	b := strings.Builder{}
	if err := tree.Dump(&b); nil != err {
		return "", err
	}
	return b.String(), nil
}
