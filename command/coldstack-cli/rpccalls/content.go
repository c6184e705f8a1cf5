// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/coldstackd/rpc/content"
	"github.com/bitmark-inc/coldstackd/rpc/core"
)

// Upload - record a stored file
func (c *Client) Upload(arguments *content.UploadArguments) (*core.Receipt, error) {
	reply := &core.Receipt{}
	if err := c.call("Content.Upload", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Delete - remove a file record
func (c *Client) Delete(arguments *content.DeleteArguments) (*core.Receipt, error) {
	reply := &core.Receipt{}
	if err := c.call("Content.Delete", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// RegisterGateway - add or update a gateway node
func (c *Client) RegisterGateway(arguments *content.RegisterGatewayArguments) (*core.Receipt, error) {
	reply := &core.Receipt{}
	if err := c.call("Content.RegisterGateway", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Gateways - every registered gateway
func (c *Client) Gateways() (*content.GatewaysReply, error) {
	reply := &content.GatewaysReply{}
	if err := c.call("Content.Gateways", &content.GatewaysArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// NodeURL - the URL recorded for an address
func (c *Client) NodeURL(arguments *content.NodeURLArguments) (*content.NodeURLReply, error) {
	reply := &content.NodeURLReply{}
	if err := c.call("Content.NodeURL", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// File - one file record
func (c *Client) File(arguments *content.FileArguments) (*content.FileReply, error) {
	reply := &content.FileReply{}
	if err := c.call("Content.File", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Counters - live file count and total size
func (c *Client) Counters() (*content.CountersReply, error) {
	reply := &content.CountersReply{}
	if err := c.call("Content.Counters", &content.CountersArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
