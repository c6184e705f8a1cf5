// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package content_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	ledgercontent "github.com/bitmark-inc/coldstackd/content"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/operation"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/rpc/content"
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/fixtures"
	"github.com/bitmark-inc/coldstackd/rpc/mocks"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockCore, *content.Content) {
	ctl := gomock.NewController(t)
	c := mocks.NewMockCore(ctl)
	log := logger.New(fixtures.LogCategory)
	return ctl, c, content.New(log, c, core.NewSubmitter(c, log))
}

func TestUpload(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, c, s := setup(t)
	defer ctl.Finish()

	caller := fixtures.Identity(0xb0)
	op := operation.Upload{
		Owner:       fixtures.Address(0x0b),
		FileName:    fixtures.Hash(0x01),
		Size:        10,
		ContentHash: fixtures.Hash(0x02),
		Gateway:     fixtures.Address(0x47),
	}
	c.EXPECT().Apply(caller, op).Return(event.Event{}, fault.Unauthorized).Times(1)

	var reply core.Receipt
	err := s.Upload(&content.UploadArguments{
		Caller:      caller,
		Owner:       op.Owner,
		Name:        op.FileName,
		Size:        op.Size,
		ContentHash: op.ContentHash,
		Gateway:     op.Gateway,
	}, &reply)
	assert.Equal(t, "coldStack.Unauthorized", err.Error(), "upload")
}

func TestDeleteMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, c, s := setup(t)
	defer ctl.Finish()

	c.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(event.Event{}, fault.FileNotFound).Times(1)

	var reply core.Receipt
	err := s.Delete(&content.DeleteArguments{
		Caller: fixtures.Identity(0xa0),
		Owner:  fixtures.Address(0x0b),
		Name:   fixtures.Hash(0x01),
	}, &reply)
	assert.Equal(t, "coldStack.FileNotFound", err.Error(), "delete")
}

func TestRegisterGateway(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, c, s := setup(t)
	defer ctl.Finish()

	admin := fixtures.Identity(0xa0)
	seed := fixtures.Address(0x91)
	g := record.Gateway{Address: fixtures.Address(0x92), Seed: &seed, URL: "http://gateway.test"}

	c.EXPECT().Apply(admin, operation.RegisterGatewayNode{Address: g.Address, Seed: &seed, URL: g.URL}).Return(event.Event{
		Kind:    event.KindGatewayRegistered,
		Payload: g,
	}, nil).Times(1)

	var reply core.Receipt
	err := s.RegisterGateway(&content.RegisterGatewayArguments{
		Caller:  admin,
		Address: g.Address,
		Seed:    &seed,
		URL:     g.URL,
	}, &reply)
	assert.Nil(t, err, "register")
	assert.Equal(t, g, reply.Payload, "payload")
}

func TestQueries(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, c, s := setup(t)
	defer ctl.Finish()

	owner := fixtures.Address(0x0b)
	name := fixtures.Hash(0x01)
	f := &record.File{ContentHash: fixtures.Hash(0x02), Size: 10, Gateway: fixtures.Address(0x47)}

	c.EXPECT().Gateways().Return(nil, nil).Times(1)
	c.EXPECT().NodeURL(owner).Return("http://bob.test", true).Times(1)
	c.EXPECT().File(owner, name).Return(f, nil).Times(1)
	c.EXPECT().Counters().Return(ledgercontent.Counters{Count: 1, Size: record.NewAmount(10)}, nil).Times(1)

	var gateways content.GatewaysReply
	assert.Nil(t, s.Gateways(&content.GatewaysArguments{}, &gateways), "gateways")
	assert.Equal(t, []record.Gateway{}, gateways.Gateways, "empty gateways")

	var url content.NodeURLReply
	assert.Nil(t, s.NodeURL(&content.NodeURLArguments{Address: owner}, &url), "node url")
	assert.Equal(t, content.NodeURLReply{URL: "http://bob.test", Found: true}, url, "node url value")

	var file content.FileReply
	assert.Nil(t, s.File(&content.FileArguments{Owner: owner, Name: name}, &file), "file")
	assert.Equal(t, f, file.File, "file value")

	var counters content.CountersReply
	assert.Nil(t, s.Counters(&content.CountersArguments{}, &counters), "counters")
	assert.Equal(t, content.CountersReply{Count: 1, Size: "10"}, counters, "counters value")
}
