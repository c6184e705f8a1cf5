// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis

import (
	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/record"
)

// Text - genesis as written in the configuration file
type Text struct {
	Admin      string          `gluamapper:"admin" json:"admin"`
	Issuance   string          `gluamapper:"issuance" json:"issuance"`
	Endowments []EndowmentText `gluamapper:"endowments" json:"endowments"`
	Gateways   []GatewayText   `gluamapper:"gateways" json:"gateways"`
}

// EndowmentText - one initial balance
type EndowmentText struct {
	Address string `gluamapper:"address" json:"address"`
	Amount  string `gluamapper:"amount" json:"amount"`
}

// GatewayText - one initial gateway, empty seed for a seed node
type GatewayText struct {
	Address string `gluamapper:"address" json:"address"`
	Seed    string `gluamapper:"seed" json:"seed"`
	URL     string `gluamapper:"url" json:"url"`
}

// Parse - convert the text form
func (t Text) Parse() (Configuration, error) {
	admin, err := account.IdentityFromBase58(t.Admin)
	if nil != err {
		return Configuration{}, err
	}
	issuance, err := record.ParseAmount(t.Issuance)
	if nil != err {
		return Configuration{}, err
	}

	conf := Configuration{
		Admin:      admin,
		Issuance:   issuance,
		Endowments: make([]Endowment, 0, len(t.Endowments)),
		Gateways:   make([]record.Gateway, 0, len(t.Gateways)),
	}

	for _, e := range t.Endowments {
		address, err := account.AddressFromString(e.Address)
		if nil != err {
			return Configuration{}, err
		}
		amount, err := record.ParseAmount(e.Amount)
		if nil != err {
			return Configuration{}, err
		}
		conf.Endowments = append(conf.Endowments, Endowment{
			Address: address,
			Amount:  amount,
		})
	}

	for _, g := range t.Gateways {
		address, err := account.AddressFromString(g.Address)
		if nil != err {
			return Configuration{}, err
		}
		gateway := record.Gateway{
			Address: address,
			URL:     g.URL,
		}
		if "" != g.Seed {
			seed, err := account.AddressFromString(g.Seed)
			if nil != err {
				return Configuration{}, err
			}
			gateway.Seed = &seed
		}
		conf.Gateways = append(conf.Gateways, gateway)
	}
	return conf, nil
}
