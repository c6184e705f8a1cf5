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

// Holding - one non-zero balance
type Holding struct {
	Address account.Address
	Balance *uint256.Int
}

// Holdings - all committed balances in address order
func (l *Ledger) Holdings() ([]Holding, error) {
	holdings := make([]Holding, 0)
	err := l.pools.Balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		address, err := account.AddressFromBytes(key)
		if nil != err {
			return fault.RecordCorrupted
		}
		balance, err := record.UnpackAmount(value)
		if nil != err {
			return err
		}
		holdings = append(holdings, Holding{
			Address: address,
			Balance: balance,
		})
		return nil
	})
	return holdings, err
}

// CheckInvariant - verify the committed state
//
// locked funds plus every balance must equal the total issuance
func (l *Ledger) CheckInvariant(r storage.Reader) error {
	issuance, err := l.TotalIssuance(r)
	if nil != err {
		return err
	}
	sum, err := l.LockedFunds(r)
	if nil != err {
		return err
	}

	holdings, err := l.Holdings()
	if nil != err {
		return err
	}
	for _, h := range holdings {
		if h.Balance.IsZero() {
			return fault.InvariantViolated
		}
		sum, err = record.AddAmount(sum, h.Balance)
		if nil != err {
			return fault.InvariantViolated
		}
	}

	if !sum.Eq(issuance) {
		return fault.InvariantViolated
	}
	return nil
}
