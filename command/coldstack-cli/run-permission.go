// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/coldstackd/rpc/permission"
)

func runGrant(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := requireCaller(m); nil != err {
		return err
	}
	principal, err := checkAddress(c.String("principal"))
	if nil != err {
		return err
	}
	delegate, err := checkIdentity(c.String("delegate"))
	if nil != err {
		return err
	}
	url, err := checkURL(c.String("url"))
	if nil != err {
		return err
	}

	billing := c.Bool("billing")
	if m.verbose {
		fmt.Fprintf(m.e, "billing: %t\n", billing)
	}

	response, err := client.Grant(billing, &permission.GrantArguments{
		Caller:    m.caller,
		Principal: principal,
		Delegate:  delegate,
		URL:       url,
	})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runRevoke(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := requireCaller(m); nil != err {
		return err
	}
	principal, err := checkAddress(c.String("principal"))
	if nil != err {
		return err
	}

	response, err := client.Revoke(c.Bool("billing"), &permission.RevokeArguments{
		Caller:    m.caller,
		Principal: principal,
	})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runPermissions(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	principal, err := checkAddress(c.String("principal"))
	if nil != err {
		return err
	}

	response, err := client.Permissions(&permission.GetArguments{Principal: principal})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}
