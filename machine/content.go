// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package machine

import (
	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/content"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/policy"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

// Upload - record a new file for owner
func (m *Machine) Upload(caller account.Identity, owner account.Address, name record.Hash, size uint64, contentHash record.Hash, gateway account.Address) (event.Event, error) {
	return m.execute(caller, owner, policy.File, func(trx storage.Transaction) (event.Event, error) {
		f, err := m.content.Upload(trx, owner, name, size, contentHash, gateway)
		if nil != err {
			return event.Event{}, err
		}
		return event.Event{
			Kind: event.KindFileUploaded,
			Payload: event.File{
				Owner:       owner,
				Name:        name,
				Size:        f.Size,
				ContentHash: f.ContentHash,
				Gateway:     f.Gateway,
			},
		}, nil
	})
}

// Delete - remove a file of owner
func (m *Machine) Delete(caller account.Identity, owner account.Address, name record.Hash) (event.Event, error) {
	return m.execute(caller, owner, policy.File, func(trx storage.Transaction) (event.Event, error) {
		f, err := m.content.Delete(trx, owner, name)
		if nil != err {
			return event.Event{}, err
		}
		return event.Event{
			Kind: event.KindFileDeleted,
			Payload: event.File{
				Owner:       owner,
				Name:        name,
				Size:        f.Size,
				ContentHash: f.ContentHash,
				Gateway:     f.Gateway,
			},
		}, nil
	})
}

// RegisterGatewayNode - add or replace a gateway, nil seed for a seed node
func (m *Machine) RegisterGatewayNode(caller account.Identity, address account.Address, seed *account.Address, url string) (event.Event, error) {
	return m.execute(caller, account.Address{}, policy.Admin, func(trx storage.Transaction) (event.Event, error) {
		g, err := m.content.RegisterGateway(trx, address, seed, url)
		if nil != err {
			return event.Event{}, err
		}
		return event.Event{
			Kind:    event.KindGatewayRegistered,
			Payload: *g,
		}, nil
	})
}

// Test - emit the value given, any known caller may do this
func (m *Machine) Test(caller account.Identity, value uint64) (event.Event, error) {
	return m.executeAny(caller, func(trx storage.Transaction) (event.Event, error) {
		return event.Event{
			Kind:    event.KindTest,
			Payload: event.Test{Value: value},
		}, nil
	})
}

// Gateways - all gateways in ascending address order
func (m *Machine) Gateways() ([]record.Gateway, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.content.Gateways()
}

// NodeURL - URL recorded for an address
func (m *Machine) NodeURL(address account.Address) (string, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.content.NodeURL(m.store.Reader(), address)
}

// File - a file record, nil if absent
func (m *Machine) File(owner account.Address, name record.Hash) (*record.File, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.content.File(m.store.Reader(), owner, name)
}

// Counters - file count and total size
func (m *Machine) Counters() (content.Counters, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.content.Counters(m.store.Reader())
}
