// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupTestCache() Cache {
	return newCache()
}

func TestWriteThenRead(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, _, found := cache.Get(key)
	assert.False(t, found, "key already exists")

	cache.Set(dbPut, key, expected)
	actual, op, found := cache.Get(key)
	assert.True(t, found, "key not found")
	assert.Equal(t, dbPut, op, "wrong operation")
	assert.Equal(t, expected, actual, "wrong value")
}

func TestClear(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	data := []byte{'a', 'b', 'c', 'd'}

	cache.Set(dbPut, key, data)
	cache.Clear()

	_, _, found := cache.Get(key)
	assert.False(t, found, "clear did not empty the cache")
}

func TestReadDeleteOperation(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	data := []byte{'a', 'b', 'c', 'd'}

	cache.Set(dbPut, key, data)
	cache.Set(dbDelete, key, nil)

	actual, op, found := cache.Get(key)
	assert.True(t, found, "pending delete must be visible")
	assert.Equal(t, dbDelete, op, "wrong operation")
	assert.Nil(t, actual, "delete operation should give no value")
}
