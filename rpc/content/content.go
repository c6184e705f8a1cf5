// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package content

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
	rateLimitContent = 200
	rateBurstContent = 100
)

// Content - type for RPC calls
type Content struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	core      core.Core
	submitter *core.Submitter
}

// New - create the Content service
func New(log *logger.L, c core.Core, submitter *core.Submitter) *Content {
	return &Content{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitContent, rateBurstContent),
		core:      c,
		submitter: submitter,
	}
}

// UploadArguments - a new file
type UploadArguments struct {
	Caller      account.Identity `json:"caller"`
	Owner       account.Address  `json:"owner"`
	Name        record.Hash      `json:"name"`
	Size        uint64           `json:"size,string"`
	ContentHash record.Hash      `json:"contentHash"`
	Gateway     account.Address  `json:"gateway"`
}

// Upload - record a file for its owner
func (c *Content) Upload(arguments *UploadArguments, reply *core.Receipt) error {
	return c.submit(arguments.Caller, operation.Upload{
		Owner:       arguments.Owner,
		FileName:    arguments.Name,
		Size:        arguments.Size,
		ContentHash: arguments.ContentHash,
		Gateway:     arguments.Gateway,
	}, reply)
}

// DeleteArguments - file to remove
type DeleteArguments struct {
	Caller account.Identity `json:"caller"`
	Owner  account.Address  `json:"owner"`
	Name   record.Hash      `json:"name"`
}

// Delete - remove a file
func (c *Content) Delete(arguments *DeleteArguments, reply *core.Receipt) error {
	return c.submit(arguments.Caller, operation.Delete{
		Owner:    arguments.Owner,
		FileName: arguments.Name,
	}, reply)
}

// RegisterGatewayArguments - gateway to add, no seed for a seed node
type RegisterGatewayArguments struct {
	Caller  account.Identity `json:"caller"`
	Address account.Address  `json:"address"`
	Seed    *account.Address `json:"seedAddress"`
	URL     string           `json:"url"`
}

// RegisterGateway - add or replace a gateway
func (c *Content) RegisterGateway(arguments *RegisterGatewayArguments, reply *core.Receipt) error {
	return c.submit(arguments.Caller, operation.RegisterGatewayNode{
		Address: arguments.Address,
		Seed:    arguments.Seed,
		URL:     arguments.URL,
	}, reply)
}

// GatewaysArguments - empty
type GatewaysArguments struct{}

// GatewaysReply - all gateways
type GatewaysReply struct {
	Gateways []record.Gateway `json:"gateways"`
}

// Gateways - list gateways in ascending address order
func (c *Content) Gateways(_ *GatewaysArguments, reply *GatewaysReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	gateways, err := c.core.Gateways()
	if nil != err {
		return core.Error(err)
	}
	if nil == gateways {
		gateways = []record.Gateway{}
	}
	reply.Gateways = gateways
	return nil
}

// NodeURLArguments - address to query
type NodeURLArguments struct {
	Address account.Address `json:"address"`
}

// NodeURLReply - URL if one is recorded
type NodeURLReply struct {
	URL   string `json:"url"`
	Found bool   `json:"found"`
}

// NodeURL - read the URL recorded for an address
func (c *Content) NodeURL(arguments *NodeURLArguments, reply *NodeURLReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	reply.URL, reply.Found = c.core.NodeURL(arguments.Address)
	return nil
}

// FileArguments - file to read
type FileArguments struct {
	Owner account.Address `json:"owner"`
	Name  record.Hash     `json:"name"`
}

// FileReply - nil file when absent
type FileReply struct {
	File *record.File `json:"file"`
}

// File - read one file record
func (c *Content) File(arguments *FileArguments, reply *FileReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	f, err := c.core.File(arguments.Owner, arguments.Name)
	if nil != err {
		return core.Error(err)
	}
	reply.File = f
	return nil
}

// CountersArguments - empty
type CountersArguments struct{}

// CountersReply - file totals
type CountersReply struct {
	Count uint64 `json:"count,string"`
	Size  string `json:"size"`
}

// Counters - number of files and their total size
func (c *Content) Counters(_ *CountersArguments, reply *CountersReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	counters, err := c.core.Counters()
	if nil != err {
		return core.Error(err)
	}
	reply.Count = counters.Count
	reply.Size = record.FormatAmount(counters.Size)
	return nil
}

func (c *Content) submit(caller account.Identity, op operation.Operation, reply *core.Receipt) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	receipt, err := c.submitter.Submit(caller, op)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}
