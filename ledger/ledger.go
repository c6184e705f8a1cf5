// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

// keys in the totals pool
var (
	issuanceKey = []byte("issuance")
	lockedKey   = []byte("locked")
)

// Ledger - balance operations over one store
type Ledger struct {
	pools *storage.Pools
}

// New - create a ledger for the pools of a store
func New(pools *storage.Pools) *Ledger {
	return &Ledger{
		pools: pools,
	}
}

// Initialise - set the fixed issuance, all of it locked
func (l *Ledger) Initialise(trx storage.Transaction, issuance *uint256.Int) error {
	if trx.Has(l.pools.Totals, issuanceKey) {
		return fault.GenesisAlreadyApplied
	}
	trx.Put(l.pools.Totals, issuanceKey, record.PackAmount(issuance))
	trx.Put(l.pools.Totals, lockedKey, record.PackAmount(issuance))
	return nil
}

// IsInitialised - true once the issuance is set
func (l *Ledger) IsInitialised(r storage.Reader) bool {
	return r.Has(l.pools.Totals, issuanceKey)
}

// Balance - the balance of an account, zero if absent
func (l *Ledger) Balance(r storage.Reader, address account.Address) (*uint256.Int, error) {
	buffer := r.Get(l.pools.Balances, address.Bytes())
	if nil == buffer {
		return new(uint256.Int), nil
	}
	return record.UnpackAmount(buffer)
}

// TotalIssuance - the fixed supply
func (l *Ledger) TotalIssuance(r storage.Reader) (*uint256.Int, error) {
	return l.total(r, issuanceKey)
}

// LockedFunds - supply not held by any account
func (l *Ledger) LockedFunds(r storage.Reader) (*uint256.Int, error) {
	return l.total(r, lockedKey)
}

func (l *Ledger) total(r storage.Reader, key []byte) (*uint256.Int, error) {
	buffer := r.Get(l.pools.Totals, key)
	if nil == buffer {
		return nil, fault.GenesisMissing
	}
	return record.UnpackAmount(buffer)
}

// Deposit - move tokens from the locked funds to an account
func (l *Ledger) Deposit(trx storage.Transaction, target account.Address, amount *uint256.Int) error {
	if nil == amount || amount.IsZero() {
		return fault.InvalidAmount
	}

	locked, err := l.LockedFunds(trx)
	if nil != err {
		return err
	}
	if amount.Gt(locked) {
		return fault.InsufficientLockedFunds
	}

	balance, err := l.Balance(trx, target)
	if nil != err {
		return err
	}
	balance, err = record.AddAmount(balance, amount)
	if nil != err {
		return err
	}

	l.putBalance(trx, target, balance)
	trx.Put(l.pools.Totals, lockedKey, record.PackAmount(locked.Sub(locked, amount)))
	return nil
}

// Withdraw - move tokens from an account back to the locked funds
func (l *Ledger) Withdraw(trx storage.Transaction, target account.Address, amount *uint256.Int) error {
	if nil == amount || amount.IsZero() {
		return fault.InvalidAmount
	}

	balance, err := l.Balance(trx, target)
	if nil != err {
		return err
	}
	if amount.Gt(balance) {
		return fault.InsufficientFunds
	}

	locked, err := l.LockedFunds(trx)
	if nil != err {
		return err
	}
	locked, err = record.AddAmount(locked, amount)
	if nil != err {
		return err
	}

	l.putBalance(trx, target, balance.Sub(balance, amount))
	trx.Put(l.pools.Totals, lockedKey, record.PackAmount(locked))
	return nil
}

// Transfer - move tokens between accounts
//
// a transfer to self changes nothing but still needs the funds
func (l *Ledger) Transfer(trx storage.Transaction, from account.Address, to account.Address, amount *uint256.Int) error {
	if nil == amount || amount.IsZero() {
		return fault.InvalidAmount
	}

	fromBalance, err := l.Balance(trx, from)
	if nil != err {
		return err
	}
	if amount.Gt(fromBalance) {
		return fault.InsufficientFunds
	}
	if from == to {
		return nil
	}

	toBalance, err := l.Balance(trx, to)
	if nil != err {
		return err
	}
	toBalance, err = record.AddAmount(toBalance, amount)
	if nil != err {
		return err
	}

	l.putBalance(trx, from, fromBalance.Sub(fromBalance, amount))
	l.putBalance(trx, to, toBalance)
	return nil
}

// zero balances are pruned
func (l *Ledger) putBalance(trx storage.Transaction, address account.Address, balance *uint256.Int) {
	if balance.IsZero() {
		trx.Delete(l.pools.Balances, address.Bytes())
		return
	}
	trx.Put(l.pools.Balances, address.Bytes(), record.PackAmount(balance))
}
