// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coldstackd/counter"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/operation"
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/fixtures"
	"github.com/bitmark-inc/coldstackd/rpc/mocks"
	"github.com/bitmark-inc/coldstackd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCore(ctl)
	c.EXPECT().Version().Return(1, nil).Times(1)
	c.EXPECT().Admin().Return(fixtures.Identity(0xa0), nil).Times(1)

	ctr := counter.Counter(3)
	log := logger.New(fixtures.LogCategory)
	n := node.New(log, c, core.NewSubmitter(c, log), time.Now(), "testing", "1.0", &ctr)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info")
	assert.Equal(t, "testing", reply.Chain, "chain")
	assert.Equal(t, "1.0", reply.Version, "version")
	assert.Equal(t, 1, reply.Schema, "schema")
	assert.Equal(t, 2, reply.SchemaCurrent, "current schema")
	assert.True(t, reply.MustMigrate, "must migrate")
	assert.Equal(t, fixtures.Identity(0xa0), reply.Admin, "admin")
	assert.Equal(t, uint64(3), reply.RPCs, "rpc count")
}

func TestNodeTest(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	caller := fixtures.Identity(0xb0)

	c := mocks.NewMockCore(ctl)
	gomock.InOrder(
		c.EXPECT().Apply(caller, operation.Test{Value: 42}).Return(event.Event{}, fault.MigrationRequired),
		c.EXPECT().Apply(caller, operation.Test{Value: 42}).Return(event.Event{
			Kind:    event.KindTest,
			Payload: event.Test{Value: 42},
		}, nil),
	)

	ctr := counter.Counter(0)
	log := logger.New(fixtures.LogCategory)
	n := node.New(log, c, core.NewSubmitter(c, log), time.Now(), "testing", "1.0", &ctr)

	var reply core.Receipt
	err := n.Test(&node.TestArguments{Caller: caller, Value: 42}, &reply)
	assert.Equal(t, "coldStack.MigrationRequired", err.Error(), "before migration")

	err = n.Test(&node.TestArguments{Caller: caller, Value: 42}, &reply)
	assert.Nil(t, err, "after migration")
	assert.Equal(t, event.Test{Value: 42}, reply.Payload, "payload")
}
