// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/util"
)

// flag byte at the start of gateway records
const (
	seedNode      = 0x00
	secondaryNode = 0x01
)

// Gateway - a registered gateway node
//
// Seed is nil for a seed node
type Gateway struct {
	Address account.Address  `json:"address"`
	Seed    *account.Address `json:"seed_address,omitempty"`
	URL     string           `json:"url"`
}

// IsSeed - true if the node does not reference a seed
func (g Gateway) IsSeed() bool {
	return nil == g.Seed
}

// Pack - stored form of a gateway, the address is the key
func (g Gateway) Pack() []byte {
	buffer := packSeed(g.Seed)
	return util.AppendBytes(buffer, []byte(g.URL))
}

// UnpackGateway - decode a stored gateway
func UnpackGateway(address account.Address, buffer []byte) (*Gateway, error) {
	seed, n, err := unpackSeed(buffer)
	if nil != err {
		return nil, err
	}
	buffer = buffer[n:]

	url, n := util.ReadBytes(buffer, 0, MaximumURLLength)
	if 0 == n || n != len(buffer) {
		return nil, fault.RecordCorrupted
	}

	return &Gateway{
		Address: address,
		Seed:    seed,
		URL:     string(url),
	}, nil
}

// PackLegacySeed - stored form of the old seed index entry
func PackLegacySeed(seed *account.Address) []byte {
	return packSeed(seed)
}

// UnpackLegacySeed - decode the old seed index entry
func UnpackLegacySeed(buffer []byte) (*account.Address, error) {
	seed, n, err := unpackSeed(buffer)
	if nil != err {
		return nil, err
	}
	if n != len(buffer) {
		return nil, fault.RecordCorrupted
	}
	return seed, nil
}

func packSeed(seed *account.Address) []byte {
	if nil == seed {
		return []byte{seedNode}
	}
	return append([]byte{secondaryNode}, seed.Bytes()...)
}

func unpackSeed(buffer []byte) (*account.Address, int, error) {
	if 0 == len(buffer) {
		return nil, 0, fault.RecordCorrupted
	}
	switch buffer[0] {
	case seedNode:
		return nil, 1, nil
	case secondaryNode:
		if len(buffer) < 1+account.AddressLength {
			return nil, 0, fault.RecordCorrupted
		}
		seed, err := account.AddressFromBytes(buffer[1 : 1+account.AddressLength])
		if nil != err {
			return nil, 0, fault.RecordCorrupted
		}
		return &seed, 1 + account.AddressLength, nil
	default:
		return nil, 0, fault.RecordCorrupted
	}
}
