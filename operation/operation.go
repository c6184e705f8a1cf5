// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operation - decoded requests for the state machine
package operation

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/record"
)

// Operation - any request that changes state
type Operation interface {
	Name() string
}

// Deposit - credit target from the locked funds
type Deposit struct {
	Target account.Address
	Amount *uint256.Int
}

// Withdraw - return tokens from target to the locked funds
type Withdraw struct {
	Target account.Address
	Amount *uint256.Int
}

// Transfer - move tokens between accounts
type Transfer struct {
	From   account.Address
	To     account.Address
	Amount *uint256.Int
}

// GrantFilePermission - delegate the File capability for a principal
type GrantFilePermission struct {
	Principal account.Address
	Delegate  account.Identity
	URL       string
}

// RevokeFilePermission - remove the File delegate of a principal
type RevokeFilePermission struct {
	Principal account.Address
}

// GrantBillingPermission - delegate the Billing capability for a principal
type GrantBillingPermission struct {
	Principal account.Address
	Delegate  account.Identity
	URL       string
}

// RevokeBillingPermission - remove the Billing delegate of a principal
type RevokeBillingPermission struct {
	Principal account.Address
}

// Upload - add a file
type Upload struct {
	Owner       account.Address
	FileName    record.Hash
	Size        uint64
	ContentHash record.Hash
	Gateway     account.Address
}

// Delete - remove a file
type Delete struct {
	Owner    account.Address
	FileName record.Hash
}

// RegisterGatewayNode - add or replace a gateway, nil Seed for a seed node
type RegisterGatewayNode struct {
	Address account.Address
	Seed    *account.Address
	URL     string
}

// Test - emit a value
type Test struct {
	Value uint64
}

// Name - implement Operation
func (Deposit) Name() string                 { return "deposit" }
func (Withdraw) Name() string                { return "withdraw" }
func (Transfer) Name() string                { return "transfer" }
func (GrantFilePermission) Name() string     { return "grant_file_permission" }
func (RevokeFilePermission) Name() string    { return "revoke_file_permission" }
func (GrantBillingPermission) Name() string  { return "grant_billing_permission" }
func (RevokeBillingPermission) Name() string { return "revoke_billing_permission" }
func (Upload) Name() string                  { return "upload" }
func (Delete) Name() string                  { return "delete" }
func (RegisterGatewayNode) Name() string     { return "register_gateway_node" }
func (Test) Name() string                    { return "test" }
