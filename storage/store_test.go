// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/storage"
)

func TestOpenMemoryIsCurrent(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	version, err := s.Version()
	assert.Nil(t, err, "version error")
	assert.Equal(t, storage.CurrentVersion, version, "new store must be current")

	mustMigrate, err := s.MustMigrate()
	assert.Nil(t, err, "must migrate error")
	assert.False(t, mustMigrate, "new store must not need migration")
}

func TestOpenFileReopen(t *testing.T) {
	s, mustMigrate, err := storage.Open(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "open error")
	assert.False(t, mustMigrate, "new file must not need migration")

	trx, err := s.Begin()
	assert.Nil(t, err, "begin error")
	trx.SetVersion(storage.LegacyVersion)
	trx.Put(s.Pool.TestData, []byte("persist"), []byte("yes"))
	assert.Nil(t, trx.Commit(), "commit error")
	s.Close()

	s, mustMigrate, err = storage.Open(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "reopen error")
	assert.True(t, mustMigrate, "legacy file must need migration")
	assert.Equal(t, []byte("yes"), s.Pool.TestData.Get([]byte("persist")), "value lost")

	version, err := s.Version()
	assert.Nil(t, err, "version error")
	assert.Equal(t, storage.LegacyVersion, version, "wrong version")
	s.Close()

	_, err = s.Begin()
	assert.Equal(t, fault.NotInitialised, err, "begin after close")
}

func TestOpenNewerIsRejected(t *testing.T) {
	name := databaseFileName + "-newer"
	s, _, err := storage.Open(name, storage.ReadWrite)
	assert.Nil(t, err, "open error")

	trx, _ := s.Begin()
	trx.SetVersion(storage.CurrentVersion + 1)
	assert.Nil(t, trx.Commit(), "commit error")
	s.Close()

	_, _, err = storage.Open(name, storage.ReadWrite)
	assert.Equal(t, fault.DatabaseIsNewer, err, "downgrade must be refused")
}

func TestSeparateStores(t *testing.T) {
	t.Parallel()

	s1 := setupStore(t)
	defer s1.Close()
	s2 := setupStore(t)
	defer s2.Close()

	putElements(t, s1, s1.Pool.TestData, expectedElements)

	assert.True(t, s1.Pool.TestData.Has([]byte("key-one")), "missing from first store")
	assert.False(t, s2.Pool.TestData.Has([]byte("key-one")), "leaked into second store")
	assert.Nil(t, s1.Pool.TestData.Get(nonExistantKey), "non existent key")
}

func TestPoolsAreSeparate(t *testing.T) {
	t.Parallel()

	s := setupStore(t)
	defer s.Close()

	putElements(t, s, s.Pool.Balances, expectedElements)

	assert.True(t, s.Pool.Balances.Has([]byte("key-two")), "missing from balances")
	assert.False(t, s.Pool.Files.Has([]byte("key-two")), "leaked into files")
}
