// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - token balances
//
// The total issuance is fixed at genesis.  Tokens move between the
// locked funds and account balances so that at every commit:
//
//	LockedFunds + sum(balances) == TotalIssuance
//
// A balance that reaches zero is removed from the pool.
package ledger
