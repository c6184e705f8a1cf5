// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package migration_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/content"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/migration"
	"github.com/bitmark-inc/coldstackd/record"
	"github.com/bitmark-inc/coldstackd/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func makeAddress(b byte) account.Address {
	a, _ := account.AddressFromBytes(bytes.Repeat([]byte{b}, account.AddressLength))
	return a
}

var (
	seedGateway   = makeAddress(0x01)
	gateway       = makeAddress(0x02)
	urlessGateway = makeAddress(0x03)
	holder        = makeAddress(0x0a)
)

// a store laid out as schema 1
func setupLegacyStore(t *testing.T) *storage.Store {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	trx, err := s.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	trx.SetVersion(storage.LegacyVersion)

	trx.Put(s.Pool.GatewayNodeSeeds, seedGateway.Bytes(), record.PackLegacySeed(nil))
	trx.Put(s.Pool.NodeURLs, seedGateway.Bytes(), []byte("http://gateway_seed.test"))

	trx.Put(s.Pool.GatewayNodeSeeds, gateway.Bytes(), record.PackLegacySeed(&seedGateway))
	trx.Put(s.Pool.NodeURLs, gateway.Bytes(), []byte("http://gateway.test"))

	trx.Put(s.Pool.GatewayNodeSeeds, urlessGateway.Bytes(), record.PackLegacySeed(&seedGateway))

	trx.Put(s.Pool.Balances, holder.Bytes(), record.PackAmount(record.NewAmount(7)))

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return s
}

func TestMigrate(t *testing.T) {
	s := setupLegacyStore(t)
	defer s.Close()

	mustMigrate, err := s.MustMigrate()
	assert.Nil(t, err, "must migrate error")
	assert.True(t, mustMigrate, "legacy store must need migration")

	balanceBefore := s.Pool.Balances.Get(holder.Bytes())

	result, err := migration.Run(s, logger.New("migration"))
	assert.Nil(t, err, "migration error")
	assert.Equal(t, migration.Result{From: 1, To: 2, Count: 3}, result, "result")

	version, _ := s.Version()
	assert.Equal(t, storage.CurrentVersion, version, "version")

	for _, a := range []account.Address{seedGateway, gateway, urlessGateway} {
		assert.False(t, s.Pool.GatewayNodeSeeds.Has(a.Bytes()), "legacy key remains for: %s", a)
	}

	c := content.New(&s.Pool)
	g, err := c.Gateway(s.Reader(), gateway)
	assert.Nil(t, err, "gateway error")
	assert.Equal(t, &record.Gateway{Address: gateway, Seed: &seedGateway, URL: "http://gateway.test"}, g, "secondary")

	g, err = c.Gateway(s.Reader(), seedGateway)
	assert.Nil(t, err, "gateway error")
	assert.Equal(t, &record.Gateway{Address: seedGateway, URL: "http://gateway_seed.test"}, g, "seed")

	g, err = c.Gateway(s.Reader(), urlessGateway)
	assert.Nil(t, err, "gateway error")
	assert.Equal(t, "", g.URL, "missing url")

	assert.Equal(t, balanceBefore, s.Pool.Balances.Get(holder.Bytes()), "balance touched")

	url, ok := c.NodeURL(s.Reader(), gateway)
	assert.True(t, ok, "node url removed")
	assert.Equal(t, "http://gateway.test", url, "node url changed")
}

func TestMigrateTwice(t *testing.T) {
	s := setupLegacyStore(t)
	defer s.Close()

	_, err := migration.Run(s, logger.New("migration"))
	assert.Nil(t, err, "first run")

	gatewaysBefore, _ := content.New(&s.Pool).Gateways()

	result, err := migration.Run(s, logger.New("migration"))
	assert.Nil(t, err, "second run")
	assert.Equal(t, migration.Result{From: 2, To: 2, Count: 0}, result, "second result")

	gatewaysAfter, _ := content.New(&s.Pool).Gateways()
	assert.Equal(t, gatewaysBefore, gatewaysAfter, "second run changed gateways")
}

func TestMigrateResumes(t *testing.T) {
	s := setupLegacyStore(t)
	defer s.Close()

	// an earlier run stopped after converting the seed
	trx, _ := s.Begin()
	seed := record.Gateway{Address: seedGateway, URL: "http://gateway_seed.test"}
	trx.Put(s.Pool.Gateways, seedGateway.Bytes(), seed.Pack())
	trx.Delete(s.Pool.GatewayNodeSeeds, seedGateway.Bytes())
	assert.Nil(t, trx.Commit(), "partial commit")

	result, err := migration.Run(s, logger.New("migration"))
	assert.Nil(t, err, "resumed run")
	assert.Equal(t, migration.Result{From: 1, To: 2, Count: 2}, result, "resumed result")

	gateways, _ := content.New(&s.Pool).Gateways()
	assert.Equal(t, 3, len(gateways), "gateway count")
}

func TestMigrateRefusesNewer(t *testing.T) {
	s, err := storage.OpenMemory()
	assert.Nil(t, err, "open error")
	defer s.Close()

	trx, _ := s.Begin()
	trx.SetVersion(storage.CurrentVersion + 1)
	assert.Nil(t, trx.Commit(), "commit")

	_, err = migration.Run(s, logger.New("migration"))
	assert.Equal(t, fault.DatabaseIsNewer, err, "downgrade")
}

func TestMigrateCorruptedEntry(t *testing.T) {
	s := setupLegacyStore(t)
	defer s.Close()

	trx, _ := s.Begin()
	trx.Put(s.Pool.GatewayNodeSeeds, makeAddress(0x00).Bytes(), []byte{0x07})
	assert.Nil(t, trx.Commit(), "commit")

	result, err := migration.Run(s, logger.New("migration"))
	assert.Equal(t, fault.RecordCorrupted, err, "corrupted entry")
	assert.Equal(t, 0, result.Count, "nothing converted before the bad entry")

	version, _ := s.Version()
	assert.Equal(t, storage.LegacyVersion, version, "version must not advance")
}
