// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package migration - upgrade a store to the current schema
//
// Schema 1 kept only a seed index for gateway nodes, the URL of each
// node lived in the node URL lookup.  Schema 2 keeps one record per
// gateway holding both.  Each legacy entry is converted in its own
// batch so an interrupted run can simply be repeated.
package migration

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

// number of legacy entries read at a time
const fetchCount = 100

// Result - summary of a run
type Result struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}

// Run - migrate a store to storage.CurrentVersion
func Run(store *storage.Store, log *logger.L) (Result, error) {
	from, err := store.Version()
	if nil != err {
		return Result{}, err
	}
	if from > storage.CurrentVersion {
		log.Criticalf("database version: %d is newer than: %d", from, storage.CurrentVersion)
		return Result{From: from, To: from}, fault.DatabaseIsNewer
	}
	if from < storage.LegacyVersion {
		return Result{From: from, To: from}, fault.UnsupportedDatabaseVersion
	}

	log.Infof("migrate from version: %d to: %d", from, storage.CurrentVersion)

	count := 0
	cursor := store.Pool.GatewayNodeSeeds.NewFetchCursor()
	for {
		elements, err := cursor.Fetch(fetchCount)
		if nil != err {
			return Result{From: from, To: from, Count: count}, err
		}
		if 0 == len(elements) {
			break
		}
		for _, e := range elements {
			err := convertGateway(store, e, log)
			if nil != err {
				log.Errorf("gateway: %x  error: %s", e.Key, err)
				return Result{From: from, To: from, Count: count}, err
			}
			count += 1
		}
	}

	if from != storage.CurrentVersion {
		trx, err := store.Begin()
		if nil != err {
			return Result{From: from, To: from, Count: count}, err
		}
		trx.SetVersion(storage.CurrentVersion)
		err = trx.Commit()
		if nil != err {
			return Result{From: from, To: from, Count: count}, err
		}
	}

	log.Infof("migrated: %d gateway records", count)

	return Result{
		From:  from,
		To:    storage.CurrentVersion,
		Count: count,
	}, nil
}

// one legacy seed index entry to one gateway record
func convertGateway(store *storage.Store, e storage.Element, log *logger.L) error {
	address, err := account.AddressFromBytes(e.Key)
	if nil != err {
		return fault.RecordCorrupted
	}
	seed, err := record.UnpackLegacySeed(e.Value)
	if nil != err {
		return err
	}

	trx, err := store.Begin()
	if nil != err {
		return err
	}

	url := trx.Get(store.Pool.NodeURLs, address.Bytes())

	g := record.Gateway{
		Address: address,
		Seed:    seed,
		URL:     string(url),
	}
	trx.Put(store.Pool.Gateways, address.Bytes(), g.Pack())
	trx.Delete(store.Pool.GatewayNodeSeeds, address.Bytes())

	err = trx.Commit()
	if nil != err {
		return err
	}

	log.Debugf("gateway: %s  seed: %v  url: %q", address, seed, g.URL)
	return nil
}
