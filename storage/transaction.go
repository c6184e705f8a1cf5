// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/coldstackd/fault"
)

// Transaction - one atomic batch of pool changes
//
// reads through the transaction see its own pending writes,
// nothing reaches the database until Commit
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Map(*PoolHandle, func(key []byte, value []byte) error) error
	SetVersion(int)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse  bool
	access *AccessData
}

func newTransaction(access *AccessData) *transaction {
	return &transaction{
		inUse:  false,
		access: access,
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}
	t.inUse = true
	return nil
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	return handle.pendingGet(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.pendingGetN(key)
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	return handle.pendingHas(key)
}

// Map - visit every element of a pool as this transaction sees it
func (t *transaction) Map(handle *PoolHandle, f func(key []byte, value []byte) error) error {
	return handle.NewFetchCursor().pendingMap(f)
}

func (t *transaction) SetVersion(version int) {
	t.access.put(versionKey, encodeVersion(version))
}

// Commit - write the batch and release the transaction
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}
	t.inUse = false

	if 0 == t.access.pending() {
		t.access.reset()
		return nil
	}
	return t.access.write()
}

// Abort - discard the batch and release the transaction
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.access.reset()
	t.inUse = false
}
