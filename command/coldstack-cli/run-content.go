// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/coldstackd/rpc/content"
)

func runUpload(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := requireCaller(m); nil != err {
		return err
	}
	owner, err := checkAddress(c.String("owner"))
	if nil != err {
		return err
	}
	name, err := checkHash(c.String("name"))
	if nil != err {
		return err
	}
	contentHash, err := checkHash(c.String("hash"))
	if nil != err {
		return err
	}
	gateway, err := checkAddress(c.String("gateway"))
	if nil != err {
		return err
	}

	response, err := client.Upload(&content.UploadArguments{
		Caller:      m.caller,
		Owner:       owner,
		Name:        name,
		Size:        c.Uint64("size"),
		ContentHash: contentHash,
		Gateway:     gateway,
	})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runDelete(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := requireCaller(m); nil != err {
		return err
	}
	owner, err := checkAddress(c.String("owner"))
	if nil != err {
		return err
	}
	name, err := checkHash(c.String("name"))
	if nil != err {
		return err
	}

	response, err := client.Delete(&content.DeleteArguments{
		Caller: m.caller,
		Owner:  owner,
		Name:   name,
	})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runFile(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	owner, err := checkAddress(c.String("owner"))
	if nil != err {
		return err
	}
	name, err := checkHash(c.String("name"))
	if nil != err {
		return err
	}

	response, err := client.File(&content.FileArguments{
		Owner: owner,
		Name:  name,
	})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runCounters(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Counters()
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runRegisterGateway(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := requireCaller(m); nil != err {
		return err
	}
	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}
	seed, err := checkOptionalAddress(c.String("seed"))
	if nil != err {
		return err
	}
	url, err := checkURL(c.String("url"))
	if nil != err {
		return err
	}

	response, err := client.RegisterGateway(&content.RegisterGatewayArguments{
		Caller:  m.caller,
		Address: address,
		Seed:    seed,
		URL:     url,
	})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runGateways(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Gateways()
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runNodeURL(c *cli.Context) error {
	m, client, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	response, err := client.NodeURL(&content.NodeURLArguments{Address: address})
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}
