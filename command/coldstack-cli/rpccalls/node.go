// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/node"
)

// Info - node status
func (c *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	if err := c.call("Node.Info", &node.InfoArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Test - record a value, only accepted after migration
func (c *Client) Test(arguments *node.TestArguments) (*core.Receipt, error) {
	reply := &core.Receipt{}
	if err := c.call("Node.Test", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
