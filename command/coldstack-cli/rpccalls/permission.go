// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/coldstackd/rpc/core"
	"github.com/bitmark-inc/coldstackd/rpc/permission"
)

// Grant - give a delegate the file or billing capability
func (c *Client) Grant(billing bool, arguments *permission.GrantArguments) (*core.Receipt, error) {
	method := "Permission.GrantFile"
	if billing {
		method = "Permission.GrantBilling"
	}
	reply := &core.Receipt{}
	if err := c.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Revoke - remove the file or billing capability
func (c *Client) Revoke(billing bool, arguments *permission.RevokeArguments) (*core.Receipt, error) {
	method := "Permission.RevokeFile"
	if billing {
		method = "Permission.RevokeBilling"
	}
	reply := &core.Receipt{}
	if err := c.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Permissions - the admin and both grants of a principal
func (c *Client) Permissions(arguments *permission.GetArguments) (*permission.GetReply, error) {
	reply := &permission.GetReply{}
	if err := c.call("Permission.Get", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
