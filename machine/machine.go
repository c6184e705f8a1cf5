// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package machine - apply operations to a ledger store
//
// Every mutating operation is authorized, applied as one storage
// batch and, on success, reported as a single event.  A rejected
// operation leaves the store exactly as it was.
package machine

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/content"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/ledger"
	"github.com/bitmark-inc/coldstackd/migration"
	"github.com/bitmark-inc/coldstackd/permission"
	"github.com/bitmark-inc/coldstackd/policy"
	"github.com/bitmark-inc/coldstackd/storage"
)

//go:generate mockgen -destination=mocks/publisher.go -package=mocks github.com/bitmark-inc/coldstackd/machine Publisher

// Publisher - receives the event of each successful operation
type Publisher interface {
	Publish(event.Event)
}

// Machine - the ledger state machine
//
// one change at a time holds lock for writing, queries hold it for
// reading so they never observe a batch being committed
type Machine struct {
	lock        sync.RWMutex
	store       *storage.Store
	ledger      *ledger.Ledger
	permissions *permission.Registry
	content     *content.Registry
	publisher   Publisher
	log         *logger.L
}

// Option - configure a machine
type Option func(*Machine)

// WithPublisher - send events to p
func WithPublisher(p Publisher) Option {
	return func(m *Machine) {
		m.publisher = p
	}
}

// WithLogger - log to an existing channel
func WithLogger(log *logger.L) Option {
	return func(m *Machine) {
		m.log = log
	}
}

// New - create a machine over an open store
func New(store *storage.Store, options ...Option) *Machine {
	m := &Machine{
		store:       store,
		ledger:      ledger.New(&store.Pool),
		permissions: permission.New(&store.Pool),
		content:     content.New(&store.Pool),
	}
	for _, option := range options {
		option(m)
	}
	if nil == m.log {
		m.log = logger.New("machine")
	}
	return m
}

// a change to apply inside an authorized transaction
type change func(trx storage.Transaction) (event.Event, error)

// authorize then apply
func (m *Machine) execute(caller account.Identity, principal account.Address, capability policy.Capability, f change) (event.Event, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if err := m.checkSchema(); nil != err {
		return event.Event{}, err
	}
	return m.transact(func(trx storage.Transaction) (event.Event, error) {
		tables, err := m.permissions.Tables(trx)
		if nil != err {
			return event.Event{}, err
		}

		allowed, err := policy.IsAuthorized(tables, caller, principal, capability)
		if nil != err {
			m.log.Warnf("caller: %s  principal: %s  capability: %s  denied", caller, principal, capability)
			return event.Event{}, err
		}
		m.log.Debugf("caller: %s  allowed via: %s", caller, allowed.Via)

		return f(trx)
	})
}

// any identified caller may apply
func (m *Machine) executeAny(caller account.Identity, f change) (event.Event, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if caller.IsZero() {
		return event.Event{}, fault.Unauthorized
	}
	if err := m.checkSchema(); nil != err {
		return event.Event{}, err
	}
	return m.transact(f)
}

func (m *Machine) checkSchema() error {
	mustMigrate, err := m.store.MustMigrate()
	if nil != err {
		return err
	}
	if mustMigrate {
		return fault.MigrationRequired
	}
	return nil
}

// apply in one batch, commit then publish
func (m *Machine) transact(f change) (event.Event, error) {
	trx, err := m.store.Begin()
	if nil != err {
		return event.Event{}, err
	}

	e, err := f(trx)
	if nil != err {
		trx.Abort()
		m.log.Debugf("rejected: %s", err)
		return event.Event{}, err
	}

	err = trx.Commit()
	if nil != err {
		m.log.Errorf("commit error: %s", err)
		return event.Event{}, err
	}

	m.log.Infof("event: %s", e.Kind)
	m.publish(e)
	return e, nil
}

func (m *Machine) publish(e event.Event) {
	if nil != m.publisher {
		m.publisher.Publish(e)
	}
}

// Version - schema version of the store
func (m *Machine) Version() (int, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.store.Version()
}

// SetAdmin - replace the admin identity
//
// only the host may do this, it is never reachable through Apply
func (m *Machine) SetAdmin(admin account.Identity) (event.Event, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.transact(func(trx storage.Transaction) (event.Event, error) {
		err := m.permissions.SetAdmin(trx, admin)
		if nil != err {
			return event.Event{}, err
		}
		return event.Event{
			Kind:    event.KindAdminChanged,
			Payload: event.Admin{Admin: admin},
		}, nil
	})
}

// Migrate - bring the store up to the current schema
func (m *Machine) Migrate() (event.Event, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	result, err := migration.Run(m.store, m.log)
	if nil != err {
		return event.Event{}, err
	}
	e := event.Event{
		Kind: event.KindMigrated,
		Payload: event.Migrated{
			From:  result.From,
			To:    result.To,
			Count: result.Count,
		},
	}
	m.publish(e)
	return e, nil
}
