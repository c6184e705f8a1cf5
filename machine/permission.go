// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package machine

import (
	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/policy"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

// GrantFilePermission - let delegate upload and delete for principal
func (m *Machine) GrantFilePermission(caller account.Identity, principal account.Address, delegate account.Identity, url string) (event.Event, error) {
	return m.grant(caller, policy.File, event.KindFilePermissionGranted, principal, delegate, url)
}

// RevokeFilePermission - remove the file grant of principal
func (m *Machine) RevokeFilePermission(caller account.Identity, principal account.Address) (event.Event, error) {
	return m.revoke(caller, policy.File, event.KindFilePermissionRevoked, principal)
}

// GrantBillingPermission - let delegate deposit and withdraw for principal
func (m *Machine) GrantBillingPermission(caller account.Identity, principal account.Address, delegate account.Identity, url string) (event.Event, error) {
	return m.grant(caller, policy.Billing, event.KindBillingPermissionGranted, principal, delegate, url)
}

// RevokeBillingPermission - remove the billing grant of principal
func (m *Machine) RevokeBillingPermission(caller account.Identity, principal account.Address) (event.Event, error) {
	return m.revoke(caller, policy.Billing, event.KindBillingPermissionRevoked, principal)
}

// the principal's node URL is recorded along with the grant
func (m *Machine) grant(caller account.Identity, capability policy.Capability, kind event.Kind, principal account.Address, delegate account.Identity, url string) (event.Event, error) {
	return m.execute(caller, principal, policy.Admin, func(trx storage.Transaction) (event.Event, error) {
		err := m.permissions.Grant(trx, capability, principal, delegate, url)
		if nil != err {
			return event.Event{}, err
		}
		err = m.content.SetNodeURL(trx, principal, url)
		if nil != err {
			return event.Event{}, err
		}
		d := delegate
		return event.Event{
			Kind: kind,
			Payload: event.Permission{
				Principal: principal,
				Delegate:  &d,
				URL:       url,
			},
		}, nil
	})
}

func (m *Machine) revoke(caller account.Identity, capability policy.Capability, kind event.Kind, principal account.Address) (event.Event, error) {
	return m.execute(caller, principal, policy.Admin, func(trx storage.Transaction) (event.Event, error) {
		err := m.permissions.Revoke(trx, capability, principal)
		if nil != err {
			return event.Event{}, err
		}
		return event.Event{
			Kind: kind,
			Payload: event.Permission{
				Principal: principal,
			},
		}, nil
	})
}

// Admin - the current admin identity
func (m *Machine) Admin() (account.Identity, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.permissions.Admin(m.store.Reader())
}

// FilePermission - the file grant of a principal, nil if none
func (m *Machine) FilePermission(principal account.Address) (*record.Permission, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.permissions.Get(m.store.Reader(), policy.File, principal)
}

// BillingPermission - the billing grant of a principal, nil if none
func (m *Machine) BillingPermission(principal account.Address) (*record.Permission, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.permissions.Get(m.store.Reader(), policy.Billing, principal)
}
