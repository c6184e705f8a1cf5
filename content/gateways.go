// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package content

import (
	"errors"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

// stops a scan early
var errFound = errors.New("found")

// NodeURL - the URL last recorded for an address
func (r *Registry) NodeURL(rd storage.Reader, address account.Address) (string, bool) {
	buffer := rd.Get(r.pools.NodeURLs, address.Bytes())
	if nil == buffer {
		return "", false
	}
	return string(buffer), true
}

// SetNodeURL - record the URL for an address
func (r *Registry) SetNodeURL(trx storage.Transaction, address account.Address, url string) error {
	if len(url) > record.MaximumURLLength {
		return fault.InvalidURL
	}
	trx.Put(r.pools.NodeURLs, address.Bytes(), []byte(url))
	return nil
}

// Gateway - look up a gateway, nil if absent
func (r *Registry) Gateway(rd storage.Reader, address account.Address) (*record.Gateway, error) {
	buffer := rd.Get(r.pools.Gateways, address.Bytes())
	if nil == buffer {
		return nil, nil
	}
	return record.UnpackGateway(address, buffer)
}

// Gateways - all committed gateways in ascending address order
func (r *Registry) Gateways() ([]record.Gateway, error) {
	gateways := make([]record.Gateway, 0)
	err := r.pools.Gateways.NewFetchCursor().Map(func(key []byte, value []byte) error {
		address, err := account.AddressFromBytes(key)
		if nil != err {
			return fault.RecordCorrupted
		}
		g, err := record.UnpackGateway(address, value)
		if nil != err {
			return err
		}
		gateways = append(gateways, *g)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return gateways, nil
}

// RegisterGateway - add or replace a gateway node
//
// a nil seed registers a seed node
func (r *Registry) RegisterGateway(trx storage.Transaction, address account.Address, seed *account.Address, url string) (*record.Gateway, error) {
	if len(url) > record.MaximumURLLength {
		return nil, fault.InvalidURL
	}

	if nil != seed {
		if *seed == address {
			return nil, fault.InvalidGatewayReference
		}
		s, err := r.Gateway(trx, *seed)
		if nil != err {
			return nil, err
		}
		if nil == s || !s.IsSeed() {
			return nil, fault.InvalidGatewayReference
		}

		hasSecondaries, err := r.hasSecondaries(trx, address)
		if nil != err {
			return nil, err
		}
		if hasSecondaries {
			return nil, fault.SeedHasSecondaries
		}
	}

	g := &record.Gateway{
		Address: address,
		URL:     url,
	}
	if nil != seed {
		s := *seed
		g.Seed = &s
	}

	trx.Put(r.pools.Gateways, address.Bytes(), g.Pack())
	err := r.SetNodeURL(trx, address, url)
	if nil != err {
		return nil, err
	}
	return g, nil
}

// true if any gateway, committed or pending in trx, references the
// address as its seed
func (r *Registry) hasSecondaries(trx storage.Transaction, address account.Address) (bool, error) {
	found := false
	err := trx.Map(r.pools.Gateways, func(key []byte, value []byte) error {
		a, err := account.AddressFromBytes(key)
		if nil != err {
			return fault.RecordCorrupted
		}
		g, err := record.UnpackGateway(a, value)
		if nil != err {
			return err
		}
		if nil != g.Seed && address == *g.Seed {
			found = true
			return errFound
		}
		return nil
	})
	if nil != err && errFound != err {
		return false, err
	}
	return found, nil
}
