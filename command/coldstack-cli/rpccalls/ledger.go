// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/ledger"
)

// Deposit - credit an account, caller must hold the billing capability
func (c *Client) Deposit(arguments *ledger.AmountArguments) (*core.Receipt, error) {
	reply := &core.Receipt{}
	if err := c.call("Ledger.Deposit", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Withdraw - debit an account, caller must hold the billing capability
func (c *Client) Withdraw(arguments *ledger.AmountArguments) (*core.Receipt, error) {
	reply := &core.Receipt{}
	if err := c.call("Ledger.Withdraw", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - move funds between two accounts
func (c *Client) Transfer(arguments *ledger.TransferArguments) (*core.Receipt, error) {
	reply := &core.Receipt{}
	if err := c.call("Ledger.Transfer", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - read the balance of one account
func (c *Client) Balance(arguments *ledger.BalanceArguments) (*ledger.BalanceReply, error) {
	reply := &ledger.BalanceReply{}
	if err := c.call("Ledger.Balance", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Totals - total issuance and locked funds
func (c *Client) Totals() (*ledger.TotalsReply, error) {
	reply := &ledger.TotalsReply{}
	if err := c.call("Ledger.Totals", &ledger.TotalsArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
