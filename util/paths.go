// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// DataPath - place a configured file name under the data directory
//
// the database, admin, TLS and CURVE key names in coldstackd.conf
// are relative to the directory holding it unless already absolute
func DataPath(dataDirectory string, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(dataDirectory, name)
}

// IsRegularFile - true if name can be loaded as a file
//
// a directory or device where a key, certificate, admin or
// configuration file is expected counts as missing
func IsRegularFile(name string) bool {
	info, err := os.Stat(name)
	if nil != err {
		return false
	}
	return info.Mode().IsRegular()
}

// IsOccupied - true if anything at all, even a dangling link, is at
// name, so generated key material never replaces it
func IsOccupied(name string) bool {
	_, err := os.Lstat(name)
	return !os.IsNotExist(err)
}
