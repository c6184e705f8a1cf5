// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coldstackd/counter"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/rpc/certificate"
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/listeners"
	"github.com/bitmark-inc/coldstackd/rpc/server"
)

type rpcData struct {
	sync.RWMutex

	log *logger.L

	count    counter.Counter
	listener listeners.Listener

	initialised bool
}

var globalData rpcData

// Initialise - start the JSON-RPC listener
func Initialise(configuration *listeners.RPCConfiguration, c core.Core, chain string, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("rpc")
	globalData.log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(globalData.log, "rpc", configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	s, err := server.Create(globalData.log, c, chain, version, &globalData.count)
	if nil != err {
		return err
	}

	globalData.listener, err = listeners.NewRPC(configuration, globalData.log, &globalData.count, s, tlsConfig, fingerprint)
	if nil != err {
		return err
	}

	err = globalData.listener.Serve()
	if nil != err {
		globalData.listener.Close()
		return err
	}

	globalData.initialised = true
	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.listener.Close()
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}
