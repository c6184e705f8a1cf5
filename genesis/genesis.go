// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - the initial state of a ledger store
package genesis

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/content"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/ledger"
	"github.com/bitmark-inc/coldstackd/permission"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

// Endowment - a balance present from the start
type Endowment struct {
	Address account.Address
	Amount  *uint256.Int
}

// Configuration - everything set at genesis
//
// gateways are registered in the order given so seeds must come
// before their secondaries
type Configuration struct {
	Admin      account.Identity
	Issuance   *uint256.Int
	Endowments []Endowment
	Gateways   []record.Gateway
}

// Apply - write the genesis state to an empty store
func Apply(store *storage.Store, conf Configuration) error {
	if conf.Admin.IsZero() {
		return fault.InvalidIdentity
	}
	if nil == conf.Issuance {
		return fault.InvalidAmount
	}

	mustMigrate, err := store.MustMigrate()
	if nil != err {
		return err
	}
	if mustMigrate {
		return fault.MigrationRequired
	}

	l := ledger.New(&store.Pool)
	p := permission.New(&store.Pool)
	c := content.New(&store.Pool)

	trx, err := store.Begin()
	if nil != err {
		return err
	}

	err = apply(trx, conf, l, p, c)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

func apply(trx storage.Transaction, conf Configuration, l *ledger.Ledger, p *permission.Registry, c *content.Registry) error {
	err := l.Initialise(trx, conf.Issuance)
	if nil != err {
		return err
	}

	err = p.SetAdmin(trx, conf.Admin)
	if nil != err {
		return err
	}

	for _, e := range conf.Endowments {
		if nil == e.Amount {
			return fault.InvalidAmount
		}
		err := l.Deposit(trx, e.Address, e.Amount)
		if nil != err {
			return err
		}
	}

	for _, g := range conf.Gateways {
		_, err := c.RegisterGateway(trx, g.Address, g.Seed, g.URL)
		if nil != err {
			return err
		}
	}
	return nil
}

// IsApplied - true if the store already has a genesis
func IsApplied(store *storage.Store) bool {
	return ledger.New(&store.Pool).IsInitialised(store.Reader())
}
