// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/content"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/genesis"
	"github.com/bitmark-inc/coldstackd/ledger"
	"github.com/bitmark-inc/coldstackd/permission"
	"github.com/bitmark-inc/coldstackd/storage"
)

func makeIdentity(b byte) account.Identity {
	id, _ := account.IdentityFromBytes(bytes.Repeat([]byte{b}, 32))
	return id
}

func setupStore(t *testing.T) *storage.Store {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return s
}

func testText() genesis.Text {
	return genesis.Text{
		Admin:    makeIdentity(0xa0).String(),
		Issuance: "1000000",
		Endowments: []genesis.EndowmentText{
			{Address: "0x0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a", Amount: "250"},
		},
		Gateways: []genesis.GatewayText{
			{Address: "0x0101010101010101010101010101010101010101", URL: "http://gateway_seed.test"},
			{Address: "0x0202020202020202020202020202020202020202", Seed: "0x0101010101010101010101010101010101010101", URL: "http://gateway.test"},
		},
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	defer s.Close()

	conf, err := testText().Parse()
	assert.Nil(t, err, "parse error")

	assert.False(t, genesis.IsApplied(s), "empty store")
	err = genesis.Apply(s, conf)
	assert.Nil(t, err, "apply error")
	assert.True(t, genesis.IsApplied(s), "genesis not recorded")

	l := ledger.New(&s.Pool)
	issuance, _ := l.TotalIssuance(s.Reader())
	locked, _ := l.LockedFunds(s.Reader())
	balance, _ := l.Balance(s.Reader(), conf.Endowments[0].Address)
	assert.Equal(t, uint64(1000000), issuance.Uint64(), "issuance")
	assert.Equal(t, uint64(1000000-250), locked.Uint64(), "locked")
	assert.Equal(t, uint64(250), balance.Uint64(), "endowment")
	assert.Nil(t, l.CheckInvariant(s.Reader()), "invariant")

	admin, _ := permission.New(&s.Pool).Admin(s.Reader())
	assert.Equal(t, makeIdentity(0xa0), admin, "admin")

	gateways, err := content.New(&s.Pool).Gateways()
	assert.Nil(t, err, "gateways error")
	assert.Equal(t, conf.Gateways, gateways, "gateways")
}

func TestApplyTwice(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	defer s.Close()

	conf, _ := testText().Parse()
	assert.Nil(t, genesis.Apply(s, conf), "first apply")
	assert.Equal(t, fault.GenesisAlreadyApplied, genesis.Apply(s, conf), "second apply")
}

func TestApplyFailureLeavesStoreEmpty(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	defer s.Close()

	text := testText()
	text.Endowments[0].Amount = "2000000"
	conf, err := text.Parse()
	assert.Nil(t, err, "parse error")

	err = genesis.Apply(s, conf)
	assert.Equal(t, fault.InsufficientLockedFunds, err, "endowment above issuance")
	assert.False(t, genesis.IsApplied(s), "partial genesis written")
}

func TestApplySeedWithSecondariesBecomesSecondary(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	defer s.Close()

	g1 := "0x0101010101010101010101010101010101010101"
	g2 := "0x0202020202020202020202020202020202020202"
	g3 := "0x0303030303030303030303030303030303030303"

	text := testText()
	text.Gateways = []genesis.GatewayText{
		{Address: g1, URL: "http://g1.test"},
		{Address: g3, URL: "http://g3.test"},
		{Address: g2, Seed: g1, URL: "http://g2.test"},
		{Address: g1, Seed: g3, URL: "http://g1.test"},
	}
	conf, err := text.Parse()
	assert.Nil(t, err, "parse error")

	err = genesis.Apply(s, conf)
	assert.Equal(t, fault.SeedHasSecondaries, err, "secondary of a secondary accepted")
	assert.False(t, genesis.IsApplied(s), "partial genesis written")

	gateways, err := content.New(&s.Pool).Gateways()
	assert.Nil(t, err, "gateways error")
	assert.Equal(t, 0, len(gateways), "gateways written")
}

func TestParseInvalid(t *testing.T) {
	text := testText()
	text.Admin = "not base58 0OIl"
	_, err := text.Parse()
	assert.Equal(t, fault.InvalidIdentity, err, "admin")

	text = testText()
	text.Issuance = "-5"
	_, err = text.Parse()
	assert.Equal(t, fault.InvalidAmount, err, "issuance")

	text = testText()
	text.Gateways[1].Seed = "0x01"
	_, err = text.Parse()
	assert.Equal(t, fault.InvalidAddress, err, "seed")
}
