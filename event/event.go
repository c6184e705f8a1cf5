// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - records of successful state changes
package event

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/record"
)

// Kind - name of an event
type Kind string

// event kinds
const (
	KindDeposited                = Kind("Deposited")
	KindWithdrawn                = Kind("Withdrawn")
	KindTransferred              = Kind("Transferred")
	KindFilePermissionGranted    = Kind("FilePermissionGranted")
	KindFilePermissionRevoked    = Kind("FilePermissionRevoked")
	KindBillingPermissionGranted = Kind("BillingPermissionGranted")
	KindBillingPermissionRevoked = Kind("BillingPermissionRevoked")
	KindFileUploaded             = Kind("FileUploaded")
	KindFileDeleted              = Kind("FileDeleted")
	KindGatewayRegistered        = Kind("GatewayNodeRegistered")
	KindAdminChanged             = Kind("AdminChanged")
	KindTest                     = Kind("Test")
	KindMigrated                 = Kind("Migrated")
)

// Event - one emitted record
type Event struct {
	Kind    Kind        `json:"kind"`
	Payload interface{} `json:"payload"`
}

// Digest - SHA3-256 of the JSON form
type Digest [32]byte

// String - hex form of a digest
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText - convert a digest to its JSON form
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - convert the hex form back to a digest
func (d *Digest) UnmarshalText(s []byte) error {
	buffer, err := hex.DecodeString(string(s))
	if nil != err || len(buffer) != len(d) {
		return fault.InvalidHash
	}
	copy(d[:], buffer)
	return nil
}

// Marshal - JSON form of the payload
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e.Payload)
}

// Digest - identify an event
func (e Event) Digest() (Digest, error) {
	buffer, err := json.Marshal(e)
	if nil != err {
		return Digest{}, err
	}
	return sha3.Sum256(buffer), nil
}

// payloads

// Amount - balance change
type Amount struct {
	Target account.Address `json:"target"`
	Amount string          `json:"amount"`
}

// Transfer - tokens moved between accounts
type Transfer struct {
	From   account.Address `json:"from"`
	To     account.Address `json:"to"`
	Amount string          `json:"amount"`
}

// Permission - grant set or removed
type Permission struct {
	Principal account.Address   `json:"principal"`
	Delegate  *account.Identity `json:"delegate,omitempty"`
	URL       string            `json:"url,omitempty"`
}

// File - file added or removed
type File struct {
	Owner       account.Address `json:"owner"`
	Name        record.Hash     `json:"name"`
	Size        uint64          `json:"size"`
	ContentHash record.Hash     `json:"content_hash"`
	Gateway     account.Address `json:"gateway"`
}

// Admin - new admin identity
type Admin struct {
	Admin account.Identity `json:"admin"`
}

// Test - value passed to the test operation
type Test struct {
	Value uint64 `json:"value"`
}

// Migrated - schema migration summary
type Migrated struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}
