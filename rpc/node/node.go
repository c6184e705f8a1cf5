// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/counter"
	"github.com/bitmark-inc/coldstackd/operation"
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/ratelimit"
	"github.com/bitmark-inc/coldstackd/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Chain     string
	core      core.Core
	submitter *core.Submitter
	counter   *counter.Counter
}

// New - create the Node service
func New(log *logger.L, c core.Core, submitter *core.Submitter, start time.Time, chain string, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Chain:     chain,
		core:      c,
		submitter: submitter,
		counter:   counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain         string           `json:"chain"`
	Version       string           `json:"version"`
	Schema        int              `json:"schema"`
	SchemaCurrent int              `json:"schemaCurrent"`
	MustMigrate   bool             `json:"mustMigrate"`
	Admin         account.Identity `json:"admin"`
	RPCs          uint64           `json:"rpcs"`
	Uptime        string           `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	schema, err := node.core.Version()
	if nil != err {
		return core.Error(err)
	}
	admin, err := node.core.Admin()
	if nil != err {
		return core.Error(err)
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Schema = schema
	reply.SchemaCurrent = storage.CurrentVersion
	reply.MustMigrate = schema < storage.CurrentVersion
	reply.Admin = admin
	reply.RPCs = node.counter.Uint64()
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// TestArguments - value to echo as an event
type TestArguments struct {
	Caller account.Identity `json:"caller"`
	Value  uint64           `json:"value,string"`
}

// Test - emit a Test event, only available after migration
func (node *Node) Test(arguments *TestArguments, reply *core.Receipt) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}
	receipt, err := node.submitter.Submit(arguments.Caller, operation.Test{Value: arguments.Value})
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}
