// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/coldstackd/fault"
)

// FetchCursor - cursor structure
//
// cursors only see committed data
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	iter := cursor.pool.dataAccess.iterator(&cursor.maxRange)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {
		results = append(results, copyElement(iter.Key(), iter.Value()))
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	// the smallest key after the last one returned
	if n > 0 {
		last := results[n-1].Key
		start := make([]byte, len(last)+2)
		start[0] = cursor.pool.prefix
		copy(start[1:], last)
		cursor.maxRange.Start = start
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	iter := cursor.pool.dataAccess.iterator(&cursor.maxRange)

	var err error
iterating:
	for iter.Next() {
		e := copyElement(iter.Key(), iter.Value())
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

// pendingMap - Map over the committed data with the pending batch
// applied
//
// pending deletes are skipped, pending replacements are passed in
// place of the stored value and keys that exist only in the batch
// follow the committed ones in ascending order
func (cursor *FetchCursor) pendingMap(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	access := cursor.pool.dataAccess
	pending := access.pendingKeys(&cursor.maxRange)
	overridden := make(map[string]struct{}, len(pending))

	err := cursor.Map(func(key []byte, value []byte) error {
		prefixed := string(cursor.pool.prefixKey(key))
		v, op, found := access.cache.Get(prefixed)
		if !found {
			return f(key, value)
		}
		overridden[prefixed] = struct{}{}
		if dbDelete == op {
			return nil
		}
		return f(key, v)
	})
	if nil != err {
		return err
	}

	for _, prefixed := range pending {
		if _, ok := overridden[prefixed]; ok {
			continue
		}
		v, op, found := access.cache.Get(prefixed)
		if !found || dbDelete == op {
			continue
		}
		key := []byte(prefixed[1:])
		value := make([]byte, len(v))
		copy(value, v)
		err = f(key, value)
		if nil != err {
			return err
		}
	}
	return nil
}

// contents of the iterator slices must not be modified, and are
// only valid until the next call to Next
func copyElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
