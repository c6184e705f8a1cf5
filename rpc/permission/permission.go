// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

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
	rateLimitPermission = 100
	rateBurstPermission = 50
)

// Permission - type for RPC calls
type Permission struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	core      core.Core
	submitter *core.Submitter
}

// New - create the Permission service
func New(log *logger.L, c core.Core, submitter *core.Submitter) *Permission {
	return &Permission{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitPermission, rateBurstPermission),
		core:      c,
		submitter: submitter,
	}
}

// GrantArguments - delegate a capability for one principal
type GrantArguments struct {
	Caller    account.Identity `json:"caller"`
	Principal account.Address  `json:"principal"`
	Delegate  account.Identity `json:"delegate"`
	URL       string           `json:"url"`
}

// RevokeArguments - remove the grant of one principal
type RevokeArguments struct {
	Caller    account.Identity `json:"caller"`
	Principal account.Address  `json:"principal"`
}

// GrantFile - allow the delegate to upload and delete
func (p *Permission) GrantFile(arguments *GrantArguments, reply *core.Receipt) error {
	return p.submit(arguments.Caller, operation.GrantFilePermission{
		Principal: arguments.Principal,
		Delegate:  arguments.Delegate,
		URL:       arguments.URL,
	}, reply)
}

// RevokeFile - remove the file grant
func (p *Permission) RevokeFile(arguments *RevokeArguments, reply *core.Receipt) error {
	return p.submit(arguments.Caller, operation.RevokeFilePermission{Principal: arguments.Principal}, reply)
}

// GrantBilling - allow the delegate to deposit and withdraw
func (p *Permission) GrantBilling(arguments *GrantArguments, reply *core.Receipt) error {
	return p.submit(arguments.Caller, operation.GrantBillingPermission{
		Principal: arguments.Principal,
		Delegate:  arguments.Delegate,
		URL:       arguments.URL,
	}, reply)
}

// RevokeBilling - remove the billing grant
func (p *Permission) RevokeBilling(arguments *RevokeArguments, reply *core.Receipt) error {
	return p.submit(arguments.Caller, operation.RevokeBillingPermission{Principal: arguments.Principal}, reply)
}

// GetArguments - principal to query
type GetArguments struct {
	Principal account.Address `json:"principal"`
}

// GetReply - current grants of a principal
type GetReply struct {
	Admin   account.Identity   `json:"admin"`
	File    *record.Permission `json:"file"`
	Billing *record.Permission `json:"billing"`
}

// Get - read the admin and both grants of a principal
func (p *Permission) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	admin, err := p.core.Admin()
	if nil != err {
		return core.Error(err)
	}
	file, err := p.core.FilePermission(arguments.Principal)
	if nil != err {
		return core.Error(err)
	}
	billing, err := p.core.BillingPermission(arguments.Principal)
	if nil != err {
		return core.Error(err)
	}

	reply.Admin = admin
	reply.File = file
	reply.Billing = billing
	return nil
}

func (p *Permission) submit(caller account.Identity, op operation.Operation, reply *core.Receipt) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	receipt, err := p.submitter.Submit(caller, op)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}
