// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the supported networks
package chain

// names of all chains
const (
	ColdStack = "coldstack"
	Testing   = "testing"
	Local     = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case ColdStack, Testing, Local:
		return true
	default:
		return false
	}
}

// DatabaseName - default database file for a chain
func DatabaseName(name string) string {
	return name + ".leveldb"
}
