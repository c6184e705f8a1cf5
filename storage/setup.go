// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Admin              *PoolHandle `prefix:"K"`
	Totals             *PoolHandle `prefix:"S"`
	Balances           *PoolHandle `prefix:"B"`
	FilePermissions    *PoolHandle `prefix:"P"`
	BillingPermissions *PoolHandle `prefix:"Q"`
	NodeURLs           *PoolHandle `prefix:"U"`
	Files              *PoolHandle `prefix:"F"`
	Gateways           *PoolHandle `prefix:"G"`
	GatewayNodeSeeds   *PoolHandle `prefix:"g"`
	TestData           *PoolHandle `prefix:"Z"`
}

// schema versions
const (
	LegacyVersion  = 1
	CurrentVersion = 2
)

// access modes for Open
const (
	ReadOnly  = true
	ReadWrite = false
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// Store - handle to one open ledger database
type Store struct {
	sync.RWMutex
	Pool   Pools
	db     *leveldb.DB
	access *AccessData
	trx    *transaction
}

// Open - open up a database file
//
// returns true as second value if the schema is older than this
// program and must be migrated before use
func Open(database string, readOnly bool) (*Store, bool, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, false, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a store that lives only in memory
//
// used for tests and dry runs
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	s, _, err := setup(db, false)
	return s, err
}

func setup(db *leveldb.DB, readOnly bool) (*Store, bool, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, false, err
	}

	// ensure no database downgrade
	if version > CurrentVersion {
		logger.Criticalf("database version: %d > current version: %d", version, CurrentVersion)
		return nil, false, fault.DatabaseIsNewer
	}

	mustMigrate := false
	if 0 == version {
		if readOnly {
			return nil, false, fault.UnsupportedDatabaseVersion
		}

		// database was empty so tag as current version
		err := putVersion(db, CurrentVersion)
		if nil != err {
			return nil, false, err
		}
	} else if version < CurrentVersion {
		mustMigrate = true
		logger.Criticalf("database version: %d < current version: %d", version, CurrentVersion)
	}

	s := &Store{
		db:     db,
		access: newDA(db, newCache()),
	}
	s.trx = newTransaction(s.access)

	err = s.Pool.initialise(s.access)
	if nil != err {
		return nil, false, err
	}

	ok = true // prevent db close
	return s, mustMigrate, nil
}

// fill in the pool handles from the struct tags
func (p *Pools) initialise(access *AccessData) error {

	// this will be a struct type
	poolType := reflect.TypeOf(*p)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(p).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		h := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(h))
	}
	return nil
}

// Close - close the database
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// Version - the schema version of the store
func (s *Store) Version() (int, error) {
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return 0, fault.NotInitialised
	}
	return s.access.version()
}

// MustMigrate - true if the schema is older than this program
func (s *Store) MustMigrate() (bool, error) {
	version, err := s.Version()
	if nil != err {
		return false, err
	}
	return version < CurrentVersion, nil
}

// Begin - start a new transaction
//
// only one transaction may be open at any time
func (s *Store) Begin() (Transaction, error) {
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return nil, fault.NotInitialised
	}
	err := s.trx.begin()
	if nil != err {
		return nil, err
	}
	return s.trx, nil
}

// return the version number, zero if not yet set
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}
	return decodeVersion(versionValue)
}

func decodeVersion(versionValue []byte) (int, error) {
	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func encodeVersion(version int) []byte {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))
	return currentVersion
}

func putVersion(db *leveldb.DB, version int) error {
	return db.Put(versionKey, encodeVersion(version), nil)
}
