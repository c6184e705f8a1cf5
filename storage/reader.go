// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Reader - read access to the pools
//
// a Transaction is a Reader that also sees its own pending writes
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

type poolReader struct{}

func (poolReader) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (poolReader) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (poolReader) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Reader - committed data only, an open transaction's pending
// writes are never visible through it
func (s *Store) Reader() Reader {
	return poolReader{}
}
