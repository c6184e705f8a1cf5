// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/command/coldstack-cli/rpccalls"
)

const defaultConnect = "127.0.0.1:2130"

type metadata struct {
	connect string
	caller  account.Identity
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "coldstack-cli"
	app.Usage = "access a coldstackd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " coldstackd host/IP and port, `HOST:PORT`",
			EnvVar: "COLDSTACK_CONNECT",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "",
			Usage:  " calling identity `BASE58`",
			EnvVar: "COLDSTACK_IDENTITY",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if s := c.GlobalString("identity"); "" != s {
			caller, err := account.IdentityFromBase58(s)
			if nil != err {
				return fmt.Errorf("identity: %q  error: %s", s, err)
			}
			m.caller = caller
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
			fmt.Fprintf(m.e, "identity: %s\n", m.caller)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// connect to the node given by the global flags
func getClient(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)
	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

// commands that submit an operation need a caller
func requireCaller(m *metadata) error {
	if m.caller.IsZero() {
		return ErrMissingIdentity
	}
	return nil
}
