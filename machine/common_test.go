// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package machine_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/genesis"
	"github.com/bitmark-inc/coldstackd/machine"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

const (
	testingDirName = "testing"
	testIssuance   = 1000000
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func makeIdentity(b byte) account.Identity {
	id, _ := account.IdentityFromBytes(bytes.Repeat([]byte{b}, 32))
	return id
}

func makeAddress(b byte) account.Address {
	a, _ := account.AddressFromBytes(bytes.Repeat([]byte{b}, account.AddressLength))
	return a
}

func makeHash(b byte) record.Hash {
	h, _ := record.NewHash(bytes.Repeat([]byte{b}, 32))
	return h
}

var (
	admin = makeIdentity(0xa0)
	bob   = makeIdentity(0xb0)
	carol = makeIdentity(0xc0)

	bobAddress   = makeAddress(0x0b)
	carolAddress = makeAddress(0x0c)
	gatewayNode  = makeAddress(0x47)
)

// a store with genesis applied
func setupStore(t *testing.T) *storage.Store {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	err = genesis.Apply(s, genesis.Configuration{
		Admin:    admin,
		Issuance: record.NewAmount(testIssuance),
	})
	if nil != err {
		t.Fatalf("genesis error: %s", err)
	}
	return s
}

func setupMachine(t *testing.T, options ...machine.Option) (*storage.Store, *machine.Machine) {
	s := setupStore(t)
	return s, machine.New(s, options...)
}
