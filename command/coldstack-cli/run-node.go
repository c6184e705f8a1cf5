// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/coldstackd/rpc/node"
)

func runInfo(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runTest(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := requireCaller(m); nil != err {
		return err
	}

	response, err := client.Test(&node.TestArguments{
		Caller: m.caller,
		Value:  c.Uint64("value"),
	})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
