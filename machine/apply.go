// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package machine

import (
	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/operation"
)

// Apply - dispatch a decoded operation
func (m *Machine) Apply(caller account.Identity, op operation.Operation) (event.Event, error) {
	switch o := op.(type) {
	case operation.Deposit:
		return m.Deposit(caller, o.Target, o.Amount)
	case operation.Withdraw:
		return m.Withdraw(caller, o.Target, o.Amount)
	case operation.Transfer:
		return m.Transfer(caller, o.From, o.To, o.Amount)
	case operation.GrantFilePermission:
		return m.GrantFilePermission(caller, o.Principal, o.Delegate, o.URL)
	case operation.RevokeFilePermission:
		return m.RevokeFilePermission(caller, o.Principal)
	case operation.GrantBillingPermission:
		return m.GrantBillingPermission(caller, o.Principal, o.Delegate, o.URL)
	case operation.RevokeBillingPermission:
		return m.RevokeBillingPermission(caller, o.Principal)
	case operation.Upload:
		return m.Upload(caller, o.Owner, o.FileName, o.Size, o.ContentHash, o.Gateway)
	case operation.Delete:
		return m.Delete(caller, o.Owner, o.FileName)
	case operation.RegisterGatewayNode:
		return m.RegisterGatewayNode(caller, o.Address, o.Seed, o.URL)
	case operation.Test:
		return m.Test(caller, o.Value)
	default:
		return event.Event{}, fault.InvalidOperation
	}
}
