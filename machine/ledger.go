// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package machine

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/policy"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

// Deposit - credit target from the locked funds
func (m *Machine) Deposit(caller account.Identity, target account.Address, amount *uint256.Int) (event.Event, error) {
	return m.execute(caller, target, policy.Billing, func(trx storage.Transaction) (event.Event, error) {
		err := m.ledger.Deposit(trx, target, amount)
		if nil != err {
			return event.Event{}, err
		}
		return event.Event{
			Kind: event.KindDeposited,
			Payload: event.Amount{
				Target: target,
				Amount: record.FormatAmount(amount),
			},
		}, nil
	})
}

// Withdraw - return tokens from target to the locked funds
func (m *Machine) Withdraw(caller account.Identity, target account.Address, amount *uint256.Int) (event.Event, error) {
	return m.execute(caller, target, policy.Billing, func(trx storage.Transaction) (event.Event, error) {
		err := m.ledger.Withdraw(trx, target, amount)
		if nil != err {
			return event.Event{}, err
		}
		return event.Event{
			Kind: event.KindWithdrawn,
			Payload: event.Amount{
				Target: target,
				Amount: record.FormatAmount(amount),
			},
		}, nil
	})
}

// Transfer - move tokens between accounts, admin only
func (m *Machine) Transfer(caller account.Identity, from account.Address, to account.Address, amount *uint256.Int) (event.Event, error) {
	return m.execute(caller, account.Address{}, policy.Admin, func(trx storage.Transaction) (event.Event, error) {
		err := m.ledger.Transfer(trx, from, to, amount)
		if nil != err {
			return event.Event{}, err
		}
		return event.Event{
			Kind: event.KindTransferred,
			Payload: event.Transfer{
				From:   from,
				To:     to,
				Amount: record.FormatAmount(amount),
			},
		}, nil
	})
}

// Balance - committed balance of an address
func (m *Machine) Balance(address account.Address) (*uint256.Int, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.ledger.Balance(m.store.Reader(), address)
}

// TotalIssuance - the fixed supply
func (m *Machine) TotalIssuance() (*uint256.Int, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.ledger.TotalIssuance(m.store.Reader())
}

// LockedFunds - supply not held by any account
func (m *Machine) LockedFunds() (*uint256.Int, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.ledger.LockedFunds(m.store.Reader())
}

// CheckInvariant - verify the supply equation over committed state
func (m *Machine) CheckInvariant() error {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.ledger.CheckInvariant(m.store.Reader())
}
