// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess *AccessData
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

func (p *PoolHandle) put(key []byte, value []byte) {
	p.dataAccess.put(p.prefixKey(key), value)
}

func (p *PoolHandle) putN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.dataAccess.put(p.prefixKey(key), buffer)
}

func (p *PoolHandle) remove(key []byte) {
	p.dataAccess.remove(p.prefixKey(key))
}

// Get - read the committed value for a given key
//
// returns nil if the key is absent, writes pending in an open
// transaction are not visible
func (p *PoolHandle) Get(key []byte) []byte {
	value, err := p.dataAccess.getCommitted(p.prefixKey(key))
	return checkedValue("pool.Get", value, err)
}

// GetN - read a committed record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

// Has - check if a key has been committed
func (p *PoolHandle) Has(key []byte) bool {
	value, err := p.dataAccess.hasCommitted(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

// pending variants used by a transaction see its own writes
func (p *PoolHandle) pendingGet(key []byte) []byte {
	value, err := p.dataAccess.get(p.prefixKey(key))
	return checkedValue("pool.pendingGet", value, err)
}

func (p *PoolHandle) pendingGetN(key []byte) (uint64, bool) {
	return decodeN(key, p.pendingGet(key))
}

func (p *PoolHandle) pendingHas(key []byte) bool {
	value, err := p.dataAccess.has(p.prefixKey(key))
	logger.PanicIfError("pool.pendingHas", err)
	return value
}

func checkedValue(tag string, value []byte, err error) []byte {
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError(tag, err)
	return value
}

func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}
