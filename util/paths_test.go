// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coldstackd/util"
)

func TestDataPath(t *testing.T) {
	items := []struct {
		directory string
		name      string
		expected  string
	}{
		{"/var/lib/coldstackd", "data", "/var/lib/coldstackd/data"},
		{"/var/lib/coldstackd", "./rpc.crt", "/var/lib/coldstackd/rpc.crt"},
		{"/var/lib/coldstackd", "keys/../publish.private", "/var/lib/coldstackd/publish.private"},
		{"/var/lib/coldstackd", "/etc/coldstackd/admin.json", "/etc/coldstackd/admin.json"},
		{"/var/lib/coldstackd", "/etc//coldstackd/./admin.json", "/etc/coldstackd/admin.json"},
	}
	for i, item := range items {
		actual := util.DataPath(item.directory, item.name)
		assert.Equal(t, item.expected, actual, "%d: %q", i, item.name)
	}
}

func TestFileChecks(t *testing.T) {
	dir, err := ioutil.TempDir("", "coldstackd-paths")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "rpc.key")
	err = ioutil.WriteFile(file, []byte("key"), 0600)
	assert.Nil(t, err, "write error")

	sub := filepath.Join(dir, "admin.json")
	err = os.Mkdir(sub, 0700)
	assert.Nil(t, err, "mkdir error")

	missing := filepath.Join(dir, "publish.public")

	assert.True(t, util.IsRegularFile(file), "file")
	assert.False(t, util.IsRegularFile(sub), "directory loaded as file")
	assert.False(t, util.IsRegularFile(missing), "missing file")

	assert.True(t, util.IsOccupied(file), "file")
	assert.True(t, util.IsOccupied(sub), "directory would be replaced")
	assert.False(t, util.IsOccupied(missing), "missing file")

	dangling := filepath.Join(dir, "publish.private")
	if nil == os.Symlink(missing, dangling) {
		assert.False(t, util.IsRegularFile(dangling), "dangling link loaded")
		assert.True(t, util.IsOccupied(dangling), "dangling link would be replaced")
	}
}
