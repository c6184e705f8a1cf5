// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/record"
)

func checkAddress(s string) (account.Address, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return account.Address{}, ErrMissingAddress
	}
	return account.AddressFromString(s)
}

// empty text gives nil
func checkOptionalAddress(s string) (*account.Address, error) {
	if "" == strings.TrimSpace(s) {
		return nil, nil
	}
	a, err := checkAddress(s)
	if nil != err {
		return nil, err
	}
	return &a, nil
}

func checkIdentity(s string) (account.Identity, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return account.Identity{}, ErrMissingDelegate
	}
	return account.IdentityFromBase58(s)
}

func checkHash(s string) (record.Hash, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return record.Hash{}, ErrMissingHash
	}
	return record.HashFromString(s)
}

// the value is only validated here, the node receives the text
func checkAmount(s string) (string, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return "", ErrMissingAmount
	}
	if _, err := record.ParseAmount(s); nil != err {
		return "", err
	}
	return s, nil
}

func checkURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return "", ErrMissingURL
	}
	return s, nil
}
