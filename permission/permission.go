// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package permission - the admin identity and delegation grants
//
// At most one File grant and one Billing grant exist per principal.
// Granting again replaces the previous delegate.
package permission

import (
	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/policy"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

var adminKey = []byte("admin")

// Registry - grants held in one store
type Registry struct {
	pools *storage.Pools
}

// New - create a registry for the pools of a store
func New(pools *storage.Pools) *Registry {
	return &Registry{
		pools: pools,
	}
}

// Admin - the current admin, zero if none has been set
func (r *Registry) Admin(rd storage.Reader) (account.Identity, error) {
	buffer := rd.Get(r.pools.Admin, adminKey)
	if nil == buffer {
		return account.Identity{}, nil
	}
	id, err := account.IdentityFromBytes(buffer)
	if nil != err {
		return account.Identity{}, fault.RecordCorrupted
	}
	return id, nil
}

// SetAdmin - replace the admin identity
func (r *Registry) SetAdmin(trx storage.Transaction, admin account.Identity) error {
	if admin.IsZero() {
		return fault.InvalidIdentity
	}
	trx.Put(r.pools.Admin, adminKey, admin.Bytes())
	return nil
}

// Grant - set the delegate for a principal
func (r *Registry) Grant(trx storage.Transaction, capability policy.Capability, principal account.Address, delegate account.Identity, url string) error {
	pool, err := r.pool(capability)
	if nil != err {
		return err
	}
	if delegate.IsZero() {
		return fault.InvalidIdentity
	}
	if len(url) > record.MaximumURLLength {
		return fault.InvalidURL
	}

	p := record.Permission{
		Delegate: delegate,
		URL:      url,
	}
	trx.Put(pool, principal.Bytes(), p.Pack())
	return nil
}

// Revoke - remove the grant for a principal
func (r *Registry) Revoke(trx storage.Transaction, capability policy.Capability, principal account.Address) error {
	pool, err := r.pool(capability)
	if nil != err {
		return err
	}
	if !trx.Has(pool, principal.Bytes()) {
		return fault.PermissionNotFound
	}
	trx.Delete(pool, principal.Bytes())
	return nil
}

// Get - the grant for a principal, nil if none
func (r *Registry) Get(rd storage.Reader, capability policy.Capability, principal account.Address) (*record.Permission, error) {
	pool, err := r.pool(capability)
	if nil != err {
		return nil, err
	}
	buffer := rd.Get(pool, principal.Bytes())
	if nil == buffer {
		return nil, nil
	}
	return record.UnpackPermission(buffer)
}

// Tables - the lookup tables for an authorization decision
func (r *Registry) Tables(rd storage.Reader) (policy.Tables, error) {
	admin, err := r.Admin(rd)
	if nil != err {
		return policy.Tables{}, err
	}
	return policy.Tables{
		Admin:   admin,
		File:    &table{registry: r, reader: rd, capability: policy.File},
		Billing: &table{registry: r, reader: rd, capability: policy.Billing},
	}, nil
}

func (r *Registry) pool(capability policy.Capability) (*storage.PoolHandle, error) {
	switch capability {
	case policy.File:
		return r.pools.FilePermissions, nil
	case policy.Billing:
		return r.pools.BillingPermissions, nil
	default:
		return nil, fault.InvalidOperation
	}
}

// a policy.Table read from storage
type table struct {
	registry   *Registry
	reader     storage.Reader
	capability policy.Capability
}

// Delegate - a corrupted grant counts as absent
func (t *table) Delegate(principal account.Address) (account.Identity, bool) {
	p, err := t.registry.Get(t.reader, t.capability, principal)
	if nil != err || nil == p {
		return account.Identity{}, false
	}
	return p.Delegate, true
}
