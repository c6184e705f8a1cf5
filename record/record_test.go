// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/record"
)

func makeAddress(b byte) account.Address {
	a, _ := account.AddressFromBytes(bytes.Repeat([]byte{b}, account.AddressLength))
	return a
}

func TestHash(t *testing.T) {
	_, err := record.NewHash(make([]byte, record.MinimumHashLength-1))
	assert.Equal(t, fault.InvalidHash, err, "short hash")

	_, err = record.NewHash(make([]byte, record.MaximumHashLength+1))
	assert.Equal(t, fault.InvalidHash, err, "long hash")

	h, err := record.HashFromString("0x000102030405060708090a0b0c0d0e0f")
	assert.Nil(t, err, "hash error")
	assert.Equal(t, 16, len(h), "hash length")
	assert.Equal(t, "0x000102030405060708090a0b0c0d0e0f", h.String(), "hash string")

	_, err = record.HashFromString("000102030405060708090a0b0c0d0e0f")
	assert.Equal(t, fault.InvalidHash, err, "missing prefix")
}

func TestAmount(t *testing.T) {
	a, err := record.ParseAmount("1000000000000000000000")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "1000000000000000000000", record.FormatAmount(a), "format")

	packed := record.PackAmount(a)
	assert.Equal(t, record.AmountBytes, len(packed), "packed length")

	b, err := record.UnpackAmount(packed)
	assert.Nil(t, err, "unpack error")
	assert.True(t, a.Eq(b), "unpacked amount differs")

	_, err = record.UnpackAmount(packed[1:])
	assert.Equal(t, fault.RecordCorrupted, err, "short amount")

	_, err = record.ParseAmount("-1")
	assert.Equal(t, fault.InvalidAmount, err, "negative")

	_, err = record.ParseAmount("12x")
	assert.Equal(t, fault.InvalidAmount, err, "not a number")

	_, err = record.ParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639936")
	assert.Equal(t, fault.NumericOverflow, err, "2^256")
}

func TestAddAmountOverflow(t *testing.T) {
	max, err := record.ParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	assert.Nil(t, err, "parse max")

	_, err = record.AddAmount(max, record.NewAmount(1))
	assert.Equal(t, fault.NumericOverflow, err, "overflow not detected")

	sum, err := record.AddAmount(record.NewAmount(10), record.NewAmount(5))
	assert.Nil(t, err, "add error")
	assert.Equal(t, uint64(15), sum.Uint64(), "sum")
}

func TestPermission(t *testing.T) {
	delegate, _ := account.IdentityFromBytes(bytes.Repeat([]byte{0x11}, 32))
	p := record.Permission{
		Delegate: delegate,
		URL:      "http://bob.test",
	}

	q, err := record.UnpackPermission(p.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, p, *q, "permission differs")

	_, err = record.UnpackPermission(append(p.Pack(), 0x00))
	assert.Equal(t, fault.RecordCorrupted, err, "trailing byte")

	_, err = record.UnpackPermission([]byte{0x01, 0x02})
	assert.Equal(t, fault.RecordCorrupted, err, "short identity")
}

func TestFile(t *testing.T) {
	content, _ := record.NewHash(bytes.Repeat([]byte{0xcc}, 32))
	f := record.File{
		ContentHash: content,
		Size:        10,
		Gateway:     makeAddress(0x47),
	}

	g, err := record.UnpackFile(f.Pack())
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, f, *g, "file differs")

	packed := f.Pack()
	_, err = record.UnpackFile(packed[:len(packed)-1])
	assert.Equal(t, fault.RecordCorrupted, err, "truncated gateway")
}

func TestFileKey(t *testing.T) {
	owner := makeAddress(0x01)
	name, _ := record.NewHash(bytes.Repeat([]byte{0x02}, 20))

	key := record.FileKey(owner, name)
	assert.Equal(t, account.AddressLength+20, len(key), "key length")

	o, n, err := record.SplitFileKey(key)
	assert.Nil(t, err, "split error")
	assert.Equal(t, owner, o, "owner")
	assert.Equal(t, name, n, "name")

	_, _, err = record.SplitFileKey(key[:account.AddressLength+3])
	assert.Equal(t, fault.RecordCorrupted, err, "short name")
}

func TestGateway(t *testing.T) {
	seedAddress := makeAddress(0x01)

	seed := record.Gateway{
		Address: seedAddress,
		URL:     "http://gateway_seed.test",
	}
	assert.True(t, seed.IsSeed(), "seed")

	u, err := record.UnpackGateway(seedAddress, seed.Pack())
	assert.Nil(t, err, "unpack seed error")
	assert.Equal(t, seed, *u, "seed differs")

	secondary := record.Gateway{
		Address: makeAddress(0x02),
		Seed:    &seedAddress,
		URL:     "http://gateway.test",
	}
	assert.False(t, secondary.IsSeed(), "secondary")

	u, err = record.UnpackGateway(secondary.Address, secondary.Pack())
	assert.Nil(t, err, "unpack secondary error")
	assert.Equal(t, secondary, *u, "secondary differs")

	_, err = record.UnpackGateway(secondary.Address, []byte{0x02})
	assert.Equal(t, fault.RecordCorrupted, err, "bad flag")
}

func TestLegacySeed(t *testing.T) {
	seed, err := record.UnpackLegacySeed(record.PackLegacySeed(nil))
	assert.Nil(t, err, "unpack error")
	assert.Nil(t, seed, "expected no seed")

	a := makeAddress(0x09)
	seed, err = record.UnpackLegacySeed(record.PackLegacySeed(&a))
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, a, *seed, "wrong seed")

	_, err = record.UnpackLegacySeed(append(record.PackLegacySeed(nil), 0x00))
	assert.Equal(t, fault.RecordCorrupted, err, "trailing byte")
}
