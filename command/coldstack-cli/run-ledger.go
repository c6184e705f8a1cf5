// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/coldstackd/rpc/ledger"
)

func getAmountArguments(c *cli.Context, m *metadata) (*ledger.AmountArguments, error) {
	if err := requireCaller(m); nil != err {
		return nil, err
	}
	target, err := checkAddress(c.String("target"))
	if nil != err {
		return nil, err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return nil, err
	}
	return &ledger.AmountArguments{
		Caller: m.caller,
		Target: target,
		Amount: amount,
	}, nil
}

func runDeposit(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments, err := getAmountArguments(c, m)
	if nil != err {
		return err
	}

	response, err := client.Deposit(arguments)
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runWithdraw(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments, err := getAmountArguments(c, m)
	if nil != err {
		return err
	}

	response, err := client.Withdraw(arguments)
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runTransfer(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := requireCaller(m); nil != err {
		return err
	}
	from, err := checkAddress(c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkAddress(c.String("to"))
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	response, err := client.Transfer(&ledger.TransferArguments{
		Caller: m.caller,
		From:   from,
		To:     to,
		Amount: amount,
	})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runBalance(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	response, err := client.Balance(&ledger.BalanceArguments{Address: address})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runTotals(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Totals()
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}
