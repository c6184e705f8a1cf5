// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package content

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

// keys in the totals pool
var (
	fileCountKey = []byte("file-count")
	fileSizeKey  = []byte("file-size")
)

// Registry - content held in one store
type Registry struct {
	pools *storage.Pools
}

// New - create a registry for the pools of a store
func New(pools *storage.Pools) *Registry {
	return &Registry{
		pools: pools,
	}
}

// Counters - aggregate of all live files
type Counters struct {
	Count uint64
	Size  *uint256.Int
}

// Counters - read the file counters
func (r *Registry) Counters(rd storage.Reader) (Counters, error) {
	count, _ := rd.GetN(r.pools.Totals, fileCountKey)
	size := new(uint256.Int)
	if buffer := rd.Get(r.pools.Totals, fileSizeKey); nil != buffer {
		var err error
		size, err = record.UnpackAmount(buffer)
		if nil != err {
			return Counters{}, err
		}
	}
	return Counters{
		Count: count,
		Size:  size,
	}, nil
}

// File - look up a file, nil if absent
func (r *Registry) File(rd storage.Reader, owner account.Address, name record.Hash) (*record.File, error) {
	if err := checkHash(name); nil != err {
		return nil, err
	}
	buffer := rd.Get(r.pools.Files, record.FileKey(owner, name))
	if nil == buffer {
		return nil, nil
	}
	return record.UnpackFile(buffer)
}

// Upload - add a new file and count it
func (r *Registry) Upload(trx storage.Transaction, owner account.Address, name record.Hash, size uint64, content record.Hash, gateway account.Address) (*record.File, error) {
	if 0 == size {
		return nil, fault.InvalidFileSize
	}
	if err := checkHash(name); nil != err {
		return nil, err
	}
	if err := checkHash(content); nil != err {
		return nil, err
	}

	key := record.FileKey(owner, name)
	if trx.Has(r.pools.Files, key) {
		return nil, fault.FileAlreadyExists
	}

	counters, err := r.Counters(trx)
	if nil != err {
		return nil, err
	}
	if counters.Count+1 < counters.Count {
		return nil, fault.NumericOverflow
	}
	totalSize, err := record.AddAmount(counters.Size, record.NewAmount(size))
	if nil != err {
		return nil, err
	}

	f := &record.File{
		ContentHash: content,
		Size:        size,
		Gateway:     gateway,
	}
	trx.Put(r.pools.Files, key, f.Pack())
	trx.PutN(r.pools.Totals, fileCountKey, counters.Count+1)
	trx.Put(r.pools.Totals, fileSizeKey, record.PackAmount(totalSize))

	return f, nil
}

// Delete - remove a file and uncount it
func (r *Registry) Delete(trx storage.Transaction, owner account.Address, name record.Hash) (*record.File, error) {
	f, err := r.File(trx, owner, name)
	if nil != err {
		return nil, err
	}
	if nil == f {
		return nil, fault.FileNotFound
	}

	counters, err := r.Counters(trx)
	if nil != err {
		return nil, err
	}
	size := record.NewAmount(f.Size)
	if 0 == counters.Count || counters.Size.Lt(size) {
		return nil, fault.RecordCorrupted
	}

	trx.Delete(r.pools.Files, record.FileKey(owner, name))
	trx.PutN(r.pools.Totals, fileCountKey, counters.Count-1)
	trx.Put(r.pools.Totals, fileSizeKey, record.PackAmount(counters.Size.Sub(counters.Size, size)))

	return f, nil
}

func checkHash(h record.Hash) error {
	if len(h) < record.MinimumHashLength || len(h) > record.MaximumHashLength {
		return fault.InvalidHash
	}
	return nil
}
