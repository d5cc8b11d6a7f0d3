// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// FileWatcher - notify when a single file changes or disappears
type FileWatcher interface {
	Start() error
	Stop()
}

const (
	FileWatcherLoggerPrefix = "file-watcher"

	// a removed file that reappears within this time was replaced
	replaceDelay = 500 * time.Millisecond
)

type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

type FileWatcherData struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	shutdown chan struct{}
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channel WatcherChannel) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fmt.Errorf("%w: %q", fault.ErrWatcherFailed, filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, fmt.Errorf("%w: %v", fault.ErrWatcherFailed, err)
	}

	return &FileWatcherData{
		log:      log,
		channel:  channel,
		watcher:  watcher,
		filePath: filePath,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start - begin watching
//
// the directory is watched rather than the file so that editors which
// delete and recreate the file on save are reported as a change, only a
// file that stays away for replaceDelay is reported as removed
func (w *FileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return fmt.Errorf("%w: %v", fault.ErrWatcherFailed, err)
	}

	go w.run()
	return nil
}

// Stop - shut down the watcher and wait for its goroutine
func (w *FileWatcherData) Stop() {
	close(w.shutdown)
	<-w.done
	w.watcher.Close()
}

func (w *FileWatcherData) run() {
	defer close(w.done)

	name := filepath.Base(w.filePath)

	// non-nil while waiting to see if a removed file comes back
	var removed <-chan time.Time

loop:
	for {
		select {
		case <-w.shutdown:
			break loop

		case <-removed:
			w.log.Errorf("file %s removed, stop", w.filePath)
			w.sendEvent(w.channel.remove, "remove")
			break loop

		case err := <-w.watcher.Errors:
			w.log.Errorf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			if filepath.Base(event.Name) != name {
				w.log.Tracef("file %s not match, discard event", event.Name)
				continue loop
			}
			w.log.Infof("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, wait for replacement", w.filePath)
				removed = time.After(replaceDelay)
				continue loop
			}

			if watcherEventFileChange(event) {
				if nil != removed {
					w.log.Infof("file %s replaced", w.filePath)
					removed = nil
				}
				w.log.Info("sending config change event…")
				w.sendEvent(w.channel.change, "change")
			}
		}
	}
}

func (w *FileWatcherData) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" || event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
