// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coldstackd/counter"
	"github.com/bitmark-inc/coldstackd/event"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/genesis"
	"github.com/bitmark-inc/coldstackd/machine"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/rpc/certificate"
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/fixtures"
	"github.com/bitmark-inc/coldstackd/rpc/ledger"
	"github.com/bitmark-inc/coldstackd/rpc/listeners"
	"github.com/bitmark-inc/coldstackd/rpc/server"
	"github.com/bitmark-inc/coldstackd/storage"
)

func TestNewRPCValidation(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	count := counter.Counter(0)

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}, log, &count, nil, nil, [32]byte{})
	assert.Equal(t, fault.MissingParameters, err, "zero connections")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
	}, log, &count, nil, nil, [32]byte{})
	assert.Equal(t, fault.MissingParameters, err, "no listen")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"localhost:2130"},
	}, log, &count, nil, nil, [32]byte{})
	assert.Equal(t, fault.InvalidIPAddress, err, "host name")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"*:2130", "[::1]:2130", "127.0.0.1:2130"},
	}, log, &count, nil, nil, [32]byte{})
	assert.Nil(t, err, "valid addresses")
}

func TestServeOverTLS(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	cer := filepath.Join(fixtures.Directory, "rpc.crt")
	key := filepath.Join(fixtures.Directory, "rpc.key")
	err := certificate.MakeSelfSigned("test", cer, key, []string{"127.0.0.1"})
	assert.Nil(t, err, "make certificate")

	tlsConfig, fingerprint, err := certificate.Get(log, "test", cer, key)
	assert.Nil(t, err, "get certificate")

	admin := fixtures.Identity(0xa0)
	store, err := storage.OpenMemory()
	assert.Nil(t, err, "open store")
	defer store.Close()
	err = genesis.Apply(store, genesis.Configuration{Admin: admin, Issuance: record.NewAmount(1000)})
	assert.Nil(t, err, "genesis")

	count := counter.Counter(0)
	s, err := server.Create(log, machine.New(store), "testing", "test", &count)
	assert.Nil(t, err, "create server")

	l, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:0"},
	}, log, &count, s, tlsConfig, fingerprint)
	assert.Nil(t, err, "new listener")
	assert.Nil(t, l.Serve(), "serve")
	defer l.Close()

	address := l.Addresses()[0].String()
	clientConfig := &tls.Config{InsecureSkipVerify: true}

	conn, err := tls.Dial("tcp", address, clientConfig)
	assert.Nil(t, err, "dial")
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	target := fixtures.Address(0x0b)

	var receipt core.Receipt
	err = client.Call("Ledger.Deposit", ledger.AmountArguments{Caller: admin, Target: target, Amount: "25"}, &receipt)
	assert.Nil(t, err, "deposit")
	assert.Equal(t, event.KindDeposited, receipt.Kind, "deposit kind")

	err = client.Call("Ledger.Withdraw", ledger.AmountArguments{Caller: admin, Target: target, Amount: "26"}, &receipt)
	assert.NotNil(t, err, "over withdraw")
	if nil != err {
		assert.Equal(t, "coldStack.InsufficientFunds", err.Error(), "error string")
	}

	var balance ledger.BalanceReply
	err = client.Call("Ledger.Balance", ledger.BalanceArguments{Address: target}, &balance)
	assert.Nil(t, err, "balance")
	assert.Equal(t, "25", balance.Balance, "balance value")

	assert.Equal(t, uint64(1), count.Uint64(), "connection count")

	// the only connection slot is taken
	conn2, err := tls.Dial("tcp", address, clientConfig)
	if nil == err {
		client2 := jsonrpc.NewClient(conn2)
		err = client2.Call("Ledger.Balance", ledger.BalanceArguments{Address: target}, &balance)
		_ = client2.Close()
	}
	assert.NotNil(t, err, "second connection accepted")
}
