// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package policy - decide whether a caller may act for a principal
//
// The decision depends only on the admin identity and the two grant
// tables; nothing is read from or written to storage here.
package policy

import (
	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
)

// Capability - what the caller wants to do
type Capability int

// capabilities
const (
	File Capability = iota
	Billing
	Admin
)

func (c Capability) String() string {
	switch c {
	case File:
		return "File"
	case Billing:
		return "Billing"
	case Admin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// Via - the route by which a caller was allowed
type Via int

// routes
const (
	ViaAdmin Via = iota + 1
	ViaDelegate
)

func (v Via) String() string {
	switch v {
	case ViaAdmin:
		return "Admin"
	case ViaDelegate:
		return "Delegate"
	default:
		return "None"
	}
}

// Allowed - a positive decision
type Allowed struct {
	Via Via
}

// Table - the delegate currently granted for a principal
type Table interface {
	Delegate(principal account.Address) (account.Identity, bool)
}

// Grants - a Table held in memory
type Grants map[account.Address]account.Identity

// Delegate - implement Table
func (g Grants) Delegate(principal account.Address) (account.Identity, bool) {
	id, ok := g[principal]
	return id, ok
}

// Tables - everything a decision needs
type Tables struct {
	Admin   account.Identity
	File    Table
	Billing Table
}

// IsAuthorized - admin may do anything, a delegate only what its
// grant covers for that one principal
func IsAuthorized(tables Tables, caller account.Identity, principal account.Address, capability Capability) (Allowed, error) {
	if caller.IsZero() {
		return Allowed{}, fault.Unauthorized
	}

	if !tables.Admin.IsZero() && caller == tables.Admin {
		return Allowed{Via: ViaAdmin}, nil
	}

	var table Table
	switch capability {
	case File:
		table = tables.File
	case Billing:
		table = tables.Billing
	default:
		return Allowed{}, fault.Unauthorized
	}

	if nil == table {
		return Allowed{}, fault.Unauthorized
	}
	if delegate, ok := table.Delegate(principal); ok && delegate == caller {
		return Allowed{Via: ViaDelegate}, nil
	}
	return Allowed{}, fault.Unauthorized
}
