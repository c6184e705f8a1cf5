// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/coldstackd/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 20

const addressPrefix = "0x"

// Address - an ethereum style address
type Address [AddressLength]byte

// AddressFromBytes - convert a byte slice to an address
func AddressFromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(buffer) {
		return a, fault.InvalidAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// AddressFromString - convert 0x prefixed hex to an address
func AddressFromString(s string) (Address, error) {
	a := Address{}
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, addressPrefix) && !strings.HasPrefix(s, "0X") {
		return a, fault.InvalidAddress
	}
	buffer, err := hex.DecodeString(s[len(addressPrefix):])
	if nil != err {
		return a, fault.InvalidAddress
	}
	return AddressFromBytes(buffer)
}

// Bytes - address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// String - hex form for printing
func (a Address) String() string {
	return addressPrefix + hex.EncodeToString(a[:])
}

// GoString - hex form for %#v
func (a Address) GoString() string {
	return "<Address:" + a.String() + ">"
}

// MarshalText - convert an address to its JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert JSON text to an address
func (a *Address) UnmarshalText(s []byte) error {
	aa, err := AddressFromString(string(s))
	if nil != err {
		return err
	}
	*a = aa
	return nil
}
