// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock mock of scenario.Reporter, laid out as mockgen
// would produce it
package mocks

import (
	scenario "github.com/bitmark-inc/avltree/scenario"
	gomock "github.com/golang/mock/gomock"
	reflect "reflect"
)

// MockReporter is a mock of Reporter interface
type MockReporter struct {
	ctrl     *gomock.Controller
	recorder *MockReporterMockRecorder
}

// MockReporterMockRecorder is the mock recorder for MockReporter
type MockReporterMockRecorder struct {
	mock *MockReporter
}

// NewMockReporter creates a new mock instance
func NewMockReporter(ctrl *gomock.Controller) *MockReporter {
	mock := &MockReporter{ctrl: ctrl}
	mock.recorder = &MockReporterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockReporter) EXPECT() *MockReporterMockRecorder {
	return m.recorder
}

// Start mocks base method
func (m *MockReporter) Start(name, variant string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", name, variant)
}

// Start indicates an expected call of Start
func (mr *MockReporterMockRecorder) Start(name, variant interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockReporter)(nil).Start), name, variant)
}

// Inserted mocks base method
func (m *MockReporter) Inserted(key int, added bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Inserted", key, added)
}

// Inserted indicates an expected call of Inserted
func (mr *MockReporterMockRecorder) Inserted(key, added interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Inserted", reflect.TypeOf((*MockReporter)(nil).Inserted), key, added)
}

// Erased mocks base method
func (m *MockReporter) Erased(key int, removed bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Erased", key, removed)
}

// Erased indicates an expected call of Erased
func (mr *MockReporterMockRecorder) Erased(key, removed interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Erased", reflect.TypeOf((*MockReporter)(nil).Erased), key, removed)
}

// Query mocks base method
func (m *MockReporter) Query(operation string, key, result int, found bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Query", operation, key, result, found)
}

// Query indicates an expected call of Query
func (mr *MockReporterMockRecorder) Query(operation, key, result, found interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Query", reflect.TypeOf((*MockReporter)(nil).Query), operation, key, result, found)
}

// Dump mocks base method
func (m *MockReporter) Dump(text string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Dump", text)
}

// Dump indicates an expected call of Dump
func (mr *MockReporterMockRecorder) Dump(text interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Dump", reflect.TypeOf((*MockReporter)(nil).Dump), text)
}

// Finish mocks base method
func (m *MockReporter) Finish(result *scenario.Result) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Finish", result)
}

// Finish indicates an expected call of Finish
func (mr *MockReporterMockRecorder) Finish(result interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Finish", reflect.TypeOf((*MockReporter)(nil).Finish), result)
}
