// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/coldstackd/fault"
)

// limits on the raw identity
const (
	MinimumIdentityLength = 32
	MaximumIdentityLength = 48
)

// Identity - signing account of a caller
//
// comparable with == so it can be used as a map key,
// the zero value is "no identity"
type Identity struct {
	raw string
}

// IdentityFromBytes - create an identity from its raw bytes
func IdentityFromBytes(buffer []byte) (Identity, error) {
	if len(buffer) < MinimumIdentityLength || len(buffer) > MaximumIdentityLength {
		return Identity{}, fault.InvalidIdentity
	}
	return Identity{raw: string(buffer)}, nil
}

// IdentityFromBase58 - decode the text form of an identity
func IdentityFromBase58(s string) (Identity, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Identity{}, fault.InvalidIdentity
	}
	return IdentityFromBytes(buffer)
}

// IsZero - true if no identity is set
func (i Identity) IsZero() bool {
	return "" == i.raw
}

// Bytes - raw bytes of the identity
func (i Identity) Bytes() []byte {
	return []byte(i.raw)
}

// String - base58 form
func (i Identity) String() string {
	if i.IsZero() {
		return ""
	}
	return base58.Encode([]byte(i.raw))
}

// MarshalText - convert an identity to its JSON form
func (i Identity) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText - convert JSON text to an identity
//
// empty text gives the zero identity
func (i *Identity) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*i = Identity{}
		return nil
	}
	ii, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	*i = ii
	return nil
}
