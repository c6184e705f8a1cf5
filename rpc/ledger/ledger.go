// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/operation"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/ratelimit"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// Ledger - type for RPC calls
type Ledger struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	core      core.Core
	submitter *core.Submitter
}

// New - create the Ledger service
func New(log *logger.L, c core.Core, submitter *core.Submitter) *Ledger {
	return &Ledger{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitLedger, rateBurstLedger),
		core:      c,
		submitter: submitter,
	}
}

// AmountArguments - deposit or withdraw
type AmountArguments struct {
	Caller account.Identity `json:"caller"`
	Target account.Address  `json:"target"`
	Amount string           `json:"amount"`
}

// Deposit - credit target from the locked funds
func (l *Ledger) Deposit(arguments *AmountArguments, reply *core.Receipt) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	amount, err := record.ParseAmount(arguments.Amount)
	if nil != err {
		return core.Error(err)
	}
	return submit(l.submitter, arguments.Caller, operation.Deposit{Target: arguments.Target, Amount: amount}, reply)
}

// Withdraw - return tokens from target to the locked funds
func (l *Ledger) Withdraw(arguments *AmountArguments, reply *core.Receipt) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	amount, err := record.ParseAmount(arguments.Amount)
	if nil != err {
		return core.Error(err)
	}
	return submit(l.submitter, arguments.Caller, operation.Withdraw{Target: arguments.Target, Amount: amount}, reply)
}

// TransferArguments - move tokens between accounts
type TransferArguments struct {
	Caller account.Identity `json:"caller"`
	From   account.Address  `json:"from"`
	To     account.Address  `json:"to"`
	Amount string           `json:"amount"`
}

// Transfer - admin only move of tokens
func (l *Ledger) Transfer(arguments *TransferArguments, reply *core.Receipt) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	amount, err := record.ParseAmount(arguments.Amount)
	if nil != err {
		return core.Error(err)
	}
	return submit(l.submitter, arguments.Caller, operation.Transfer{From: arguments.From, To: arguments.To, Amount: amount}, reply)
}

// BalanceArguments - address to query
type BalanceArguments struct {
	Address account.Address `json:"address"`
}

// BalanceReply - balance as a decimal string
type BalanceReply struct {
	Balance string `json:"balance"`
}

// Balance - read one balance
func (l *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	balance, err := l.core.Balance(arguments.Address)
	if nil != err {
		return core.Error(err)
	}
	reply.Balance = record.FormatAmount(balance)
	return nil
}

// TotalsArguments - empty
type TotalsArguments struct{}

// TotalsReply - supply figures
type TotalsReply struct {
	TotalIssuance string `json:"totalIssuance"`
	LockedFunds   string `json:"lockedFunds"`
}

// Totals - issuance and locked funds
func (l *Ledger) Totals(_ *TotalsArguments, reply *TotalsReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	issuance, err := l.core.TotalIssuance()
	if nil != err {
		return core.Error(err)
	}
	locked, err := l.core.LockedFunds()
	if nil != err {
		return core.Error(err)
	}
	reply.TotalIssuance = record.FormatAmount(issuance)
	reply.LockedFunds = record.FormatAmount(locked)
	return nil
}

func submit(submitter *core.Submitter, caller account.Identity, op operation.Operation, reply *core.Receipt) error {
	receipt, err := submitter.Submit(caller, op)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}
