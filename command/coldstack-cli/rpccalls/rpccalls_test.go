// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coldstackd/counter"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/rpc/fixtures"
	"github.com/bitmark-inc/coldstackd/rpc/ledger"
	"github.com/bitmark-inc/coldstackd/rpc/mocks"
	"github.com/bitmark-inc/coldstackd/rpc/server"
	"github.com/bitmark-inc/coldstackd/storage"
)

// client connected through a pipe to a server backed by a mock core
func setup(t *testing.T, verbose bool) (*gomock.Controller, *mocks.MockCore, *Client, *bytes.Buffer) {
	ctl := gomock.NewController(t)
	c := mocks.NewMockCore(ctl)

	srv, err := server.Create(logger.New(fixtures.LogCategory), c, "testing", "v0", new(counter.Counter))
	assert.Nil(t, err, "server create")

	serverConn, clientConn := net.Pipe()
	go srv.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	out := &bytes.Buffer{}
	return ctl, c, newClient(clientConn, verbose, out), out
}

func TestBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, c, client, out := setup(t, false)
	defer ctl.Finish()
	defer client.Close()

	address := fixtures.Address(0x0b)
	c.EXPECT().Balance(address).Return(record.NewAmount(1234), nil).Times(1)

	reply, err := client.Balance(&ledger.BalanceArguments{Address: address})
	assert.Nil(t, err, "balance")
	assert.Equal(t, "1234", reply.Balance, "balance")
	assert.Equal(t, 0, out.Len(), "quiet client must not print")
}

func TestDepositError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, c, client, _ := setup(t, false)
	defer ctl.Finish()
	defer client.Close()

	caller := fixtures.Identity(0xb0)
	c.EXPECT().Apply(caller, gomock.Any()).Return(event.Event{}, fault.Unauthorized).Times(1)

	_, err := client.Deposit(&ledger.AmountArguments{
		Caller: caller,
		Target: fixtures.Address(0x0b),
		Amount: "10",
	})
	assert.NotNil(t, err, "deposit")
	assert.Equal(t, "coldStack.Unauthorized", err.Error(), "deposit error")
}

func TestInfoVerbose(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, c, client, out := setup(t, true)
	defer ctl.Finish()
	defer client.Close()

	admin := fixtures.Identity(0xad)
	c.EXPECT().Version().Return(storage.LegacyVersion, nil).Times(1)
	c.EXPECT().Admin().Return(admin, nil).Times(1)

	reply, err := client.Info()
	assert.Nil(t, err, "info")
	assert.Equal(t, "testing", reply.Chain, "chain")
	assert.Equal(t, "v0", reply.Version, "version")
	assert.True(t, reply.MustMigrate, "must migrate")
	assert.Equal(t, admin, reply.Admin, "admin")
	assert.Contains(t, out.String(), "Node.Info Request", "verbose request")
	assert.Contains(t, out.String(), "Node.Info Reply", "verbose reply")
}
