// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for rpc tests
package fixtures

import (
	"bytes"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/record"
)

// test logger settings
const (
	Directory   = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - file logger in the testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(Directory, 0700)

	logging := logger.Configuration{
		Directory: Directory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - close the logger and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(Directory)
}

// Identity - a fixed test identity
func Identity(b byte) account.Identity {
	id, _ := account.IdentityFromBytes(bytes.Repeat([]byte{b}, 32))
	return id
}

// Address - a fixed test address
func Address(b byte) account.Address {
	a, _ := account.AddressFromBytes(bytes.Repeat([]byte{b}, account.AddressLength))
	return a
}

// Hash - a fixed 32 byte test hash
func Hash(b byte) record.Hash {
	h, _ := record.NewHash(bytes.Repeat([]byte{b}, 32))
	return h
}
