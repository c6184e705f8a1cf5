// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/coldstackd/counter"
	"github.com/bitmark-inc/coldstackd/rpc/content"
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/ledger"
	"github.com/bitmark-inc/coldstackd/rpc/node"
	"github.com/bitmark-inc/coldstackd/rpc/permission"
)

// Create - an RPC server with every service sharing one submitter
func Create(log *logger.L, c core.Core, chain string, version string, rpcCount *counter.Counter) (*rpc.Server, error) {
	start := time.Now().UTC()
	submitter := core.NewSubmitter(c, log)

	server := rpc.NewServer()

	services := []interface{}{
		ledger.New(log, c, submitter),
		permission.New(log, c, submitter),
		content.New(log, c, submitter),
		node.New(log, c, submitter, start, chain, version, rpcCount),
	}
	for _, service := range services {
		if err := server.Register(service); nil != err {
			log.Errorf("register service error: %s", err)
			return nil, err
		}
	}

	return server, nil
}
