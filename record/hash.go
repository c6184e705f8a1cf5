// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/coldstackd/fault"
)

// limits for opaque hashes
const (
	MinimumHashLength = 16
	MaximumHashLength = 64
)

// Hash - opaque file name or content hash
type Hash []byte

// NewHash - check the length and copy the bytes
func NewHash(buffer []byte) (Hash, error) {
	if len(buffer) < MinimumHashLength || len(buffer) > MaximumHashLength {
		return nil, fault.InvalidHash
	}
	h := make(Hash, len(buffer))
	copy(h, buffer)
	return h, nil
}

// HashFromString - convert 0x prefixed hex to a hash
func HashFromString(s string) (Hash, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fault.InvalidHash
	}
	buffer, err := hex.DecodeString(s[2:])
	if nil != err {
		return nil, fault.InvalidHash
	}
	return NewHash(buffer)
}

// String - hex form for printing
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h)
}

// MarshalText - convert a hash to its JSON form
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - convert JSON text to a hash
func (h *Hash) UnmarshalText(s []byte) error {
	hh, err := HashFromString(string(s))
	if nil != err {
		return err
	}
	*h = hh
	return nil
}
