// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "info",
			Usage:  "display coldstackd status",
			Action: runInfo,
		},
		{
			Name:      "deposit",
			Usage:     "credit an account from the locked funds",
			ArgsUsage: "\n   (* = required)",
			Flags:     amountFlags(),
			Action:    runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "return funds from an account to the locked funds",
			ArgsUsage: "\n   (* = required)",
			Flags:     amountFlags(),
			Action:    runWithdraw,
		},
		{
			Name:      "transfer",
			Usage:     "move funds between two accounts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*source account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*destination account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*decimal `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("address, a", "*account"),
			},
			Action: runBalance,
		},
		{
			Name:   "totals",
			Usage:  "display total issuance and locked funds",
			Action: runTotals,
		},
		{
			Name:      "grant",
			Usage:     "grant the file or billing capability of a principal to a delegate",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("principal, p", "*principal"),
				cli.StringFlag{
					Name:  "delegate, d",
					Value: "",
					Usage: "*delegate identity `BASE58`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "*delegate node `URL`",
				},
				cli.BoolFlag{
					Name:  "billing, b",
					Usage: " billing capability instead of file capability",
				},
			},
			Action: runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "revoke the file or billing capability of a principal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("principal, p", "*principal"),
				cli.BoolFlag{
					Name:  "billing, b",
					Usage: " billing capability instead of file capability",
				},
			},
			Action: runRevoke,
		},
		{
			Name:      "permissions",
			Usage:     "display the admin and the grants of a principal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("principal, p", "*principal"),
			},
			Action: runPermissions,
		},
		{
			Name:      "upload",
			Usage:     "record a stored file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("owner, o", "*owner"),
				hashFlag("name, n", "*file name"),
				cli.Uint64Flag{
					Name:  "size, s",
					Value: 0,
					Usage: "*file size in `BYTES`",
				},
				hashFlag("hash, H", "*content"),
				addressFlag("gateway, g", "*gateway"),
			},
			Action: runUpload,
		},
		{
			Name:      "delete",
			Usage:     "remove a file record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("owner, o", "*owner"),
				hashFlag("name, n", "*file name"),
			},
			Action: runDelete,
		},
		{
			Name:      "file",
			Usage:     "display a file record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("owner, o", "*owner"),
				hashFlag("name, n", "*file name"),
			},
			Action: runFile,
		},
		{
			Name:   "counters",
			Usage:  "display live file count and total size",
			Action: runCounters,
		},
		{
			Name:      "register-gateway",
			Usage:     "add or update a gateway node",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("address, a", "*gateway"),
				addressFlag("seed, s", " seed"),
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "*gateway node `URL`",
				},
			},
			Action: runRegisterGateway,
		},
		{
			Name:   "gateways",
			Usage:  "list all gateway nodes",
			Action: runGateways,
		},
		{
			Name:      "node-url",
			Usage:     "display the URL recorded for an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("address, a", "*node"),
			},
			Action: runNodeURL,
		},
		{
			Name:      "test",
			Usage:     "emit a Test event, needs the current database schema",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "value, n",
					Value: 0,
					Usage: "*`VALUE` to record",
				},
			},
			Action: runTest,
		},
		{
			Name:   "version",
			Usage:  "display coldstack-cli version",
			Action: runVersion,
		},
	}
}

func amountFlags() []cli.Flag {
	return []cli.Flag{
		addressFlag("target, t", "*target"),
		cli.StringFlag{
			Name:  "amount, a",
			Value: "",
			Usage: "*decimal `AMOUNT`",
		},
	}
}

func addressFlag(name string, what string) cli.Flag {
	return cli.StringFlag{
		Name:  name,
		Value: "",
		Usage: what + " account `ADDRESS`",
	}
}

func hashFlag(name string, what string) cli.Flag {
	return cli.StringFlag{
		Name:  name,
		Value: "",
		Usage: what + " hash `HEX`",
	}
}
