// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InconsistentError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrCloneChangedOriginal    = InconsistentError("mutating a clone changed the original tree")
	ErrConfigurationFileRemove = NotFoundError("configuration file removed")
	ErrConfigurationNotTable   = InvalidError("configuration must return a table")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidKey              = InvalidError("invalid key")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidRandomCount      = InvalidError("random count must not be negative")
	ErrInvalidRandomErase      = InvalidError("random erase count must be between zero and the random count")
	ErrInvalidRandomLimit      = InvalidError("random limit must be positive")
	ErrInvalidSequentialCount  = InvalidError("sequential count must not be negative")
	ErrInvalidStructPointer    = InvalidError("configuration must be a pointer to a struct")
	ErrInvalidVariant          = InvalidError("variant must be avl or plain")
	ErrInvariantFailed         = ProcessError("tree invariant check failed")
	ErrMissingArguments        = InvalidError("missing arguments")
	ErrScenarioFileNotFound    = NotFoundError("scenario file not found")
	ErrTreeBalance             = InconsistentError("node balance out of range")
	ErrTreeCount               = InconsistentError("node count mismatch")
	ErrTreeHeight              = InconsistentError("node height mismatch")
	ErrTreeOrder               = InconsistentError("keys out of order")
	ErrTreeParent              = InconsistentError("parent pointer mismatch")
	ErrWatcherFailed           = ProcessError("file watcher failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InconsistentError) Error() string { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// determine the class of an error, also looks through wrapped errors
func IsErrExists(e error) bool       { var x ExistsError; return errors.As(e, &x) }
func IsErrInconsistent(e error) bool { var x InconsistentError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool      { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool     { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool      { var x ProcessError; return errors.As(e, &x) }
