// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/coldstackd/fault"
)

// AmountBytes - size of a stored amount
const AmountBytes = 32

// NewAmount - amount from a small integer
func NewAmount(n uint64) *uint256.Int {
	return new(uint256.Int).SetUint64(n)
}

// PackAmount - 32 byte big endian form
func PackAmount(amount *uint256.Int) []byte {
	b := amount.Bytes32()
	return b[:]
}

// UnpackAmount - decode a stored amount
func UnpackAmount(buffer []byte) (*uint256.Int, error) {
	if AmountBytes != len(buffer) {
		return nil, fault.RecordCorrupted
	}
	return new(uint256.Int).SetBytes(buffer), nil
}

// ParseAmount - decimal text to an amount
func ParseAmount(s string) (*uint256.Int, error) {
	b, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || b.Sign() < 0 {
		return nil, fault.InvalidAmount
	}
	a := new(uint256.Int)
	if overflow := a.SetFromBig(b); overflow {
		return nil, fault.NumericOverflow
	}
	return a, nil
}

// FormatAmount - decimal text of an amount
func FormatAmount(amount *uint256.Int) string {
	return amount.ToBig().String()
}

// AddAmount - sum that rejects wrap around
func AddAmount(a *uint256.Int, b *uint256.Int) (*uint256.Int, error) {
	sum := new(uint256.Int).Add(a, b)
	if sum.Lt(a) {
		return nil, fault.NumericOverflow
	}
	return sum, nil
}
