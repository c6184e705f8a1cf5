// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sort"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// AccessData - database plus the pending batch
//
// reads see the pending writes through the cache
type AccessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) *AccessData {
	return &AccessData{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *AccessData) put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

func (d *AccessData) remove(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

func (d *AccessData) write() error {
	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *AccessData) pending() int {
	return d.batch.Len()
}

// get - returns leveldb.ErrNotFound for absent and pending-delete keys
func (d *AccessData) get(key []byte) ([]byte, error) {
	val, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return val, nil
	}
	return d.db.Get(key, nil)
}

// getCommitted - database only, the pending batch is ignored
func (d *AccessData) getCommitted(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *AccessData) hasCommitted(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *AccessData) has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

// pendingKeys - sorted keys with a pending operation inside a range
func (d *AccessData) pendingKeys(searchRange *ldb_util.Range) []string {
	keys := make([]string, 0)
	for _, key := range d.cache.Keys() {
		if key < string(searchRange.Start) {
			continue
		}
		if nil == searchRange.Limit || key < string(searchRange.Limit) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// iterator - committed data only
func (d *AccessData) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// version - committed schema version
func (d *AccessData) version() (int, error) {
	value, err := d.getCommitted(versionKey)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}
	return decodeVersion(value)
}
