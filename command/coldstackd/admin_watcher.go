// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/fault"
)

const (
	adminWatcherLoggerPrefix = "admin-watcher"
)

// the part of the machine the watcher drives
type adminSetter interface {
	Admin() (account.Identity, error)
	SetAdmin(account.Identity) (event.Event, error)
}

// adminWatcher - replace the admin whenever the admin file changes
//
// the file holds one base58 identity, the directory is watched so
// that editors replacing the file by rename are also seen
type adminWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	target   adminSetter
}

func newAdminWatcher(adminFile string, target adminSetter, log *logger.L) (*adminWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(adminFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", adminFile, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		watcher.Close()
		log.Errorf("watcher add error: %s", err)
		return nil, err
	}

	return &adminWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		target:   target,
	}, nil
}

// Run - background process loop
func (w *adminWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Info("starting…")
	defer w.watcher.Close()

	// pick up any change made while the daemon was down
	w.reload()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case e, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(e.Name) != filepath.Base(w.filePath) {
				continue loop
			}
			log.Debugf("file event: %v", e)
			if watcherEventFileChange(e) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	log.Info("stopped")
}

// read the file and set the admin if it differs
func (w *adminWatcher) reload() {
	admin, err := readAdminFile(w.filePath)
	if nil != err {
		w.log.Warnf("admin file: %q  error: %s", w.filePath, err)
		return
	}

	current, err := w.target.Admin()
	if nil == err && current == admin {
		return
	}

	_, err = w.target.SetAdmin(admin)
	if nil != err {
		w.log.Errorf("set admin: %s  error: %s", admin, err)
		return
	}
	w.log.Infof("admin changed to: %s", admin)
}

func readAdminFile(fileName string) (account.Identity, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return account.Identity{}, err
	}
	s := strings.TrimSpace(string(data))
	if "" == s {
		return account.Identity{}, fault.MissingParameters
	}
	return account.IdentityFromBase58(s)
}

func watcherEventFileChange(e fsnotify.Event) bool {
	return e.Op&fsnotify.Write == fsnotify.Write ||
		e.Op&fsnotify.Create == fsnotify.Create ||
		e.Op&fsnotify.Rename == fsnotify.Rename
}
