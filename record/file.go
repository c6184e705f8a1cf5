// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/coldstackd/account"
	"github.com/bitmark-inc/coldstackd/fault"
	"github.com/bitmark-inc/coldstackd/util"
)

// File - an uploaded file
type File struct {
	ContentHash Hash            `json:"content_hash"`
	Size        uint64          `json:"size"`
	Gateway     account.Address `json:"gateway"`
}

// FileKey - owner ++ file name hash
func FileKey(owner account.Address, nameHash Hash) []byte {
	key := make([]byte, 0, account.AddressLength+len(nameHash))
	key = append(key, owner.Bytes()...)
	return append(key, nameHash...)
}

// SplitFileKey - recover the owner and file name hash
func SplitFileKey(key []byte) (account.Address, Hash, error) {
	if len(key) < account.AddressLength {
		return account.Address{}, nil, fault.RecordCorrupted
	}
	owner, err := account.AddressFromBytes(key[:account.AddressLength])
	if nil != err {
		return account.Address{}, nil, fault.RecordCorrupted
	}
	name, err := NewHash(key[account.AddressLength:])
	if nil != err {
		return account.Address{}, nil, fault.RecordCorrupted
	}
	return owner, name, nil
}

// Pack - stored form of a file
func (f File) Pack() []byte {
	buffer := util.AppendBytes(nil, f.ContentHash)
	size := make([]byte, 8)
	binary.BigEndian.PutUint64(size, f.Size)
	buffer = append(buffer, size...)
	return append(buffer, f.Gateway.Bytes()...)
}

// UnpackFile - decode a stored file
func UnpackFile(buffer []byte) (*File, error) {
	content, n := util.ReadBytes(buffer, MinimumHashLength, MaximumHashLength)
	if 0 == n {
		return nil, fault.RecordCorrupted
	}
	buffer = buffer[n:]

	if 8+account.AddressLength != len(buffer) {
		return nil, fault.RecordCorrupted
	}
	size := binary.BigEndian.Uint64(buffer[:8])

	gateway, err := account.AddressFromBytes(buffer[8:])
	if nil != err {
		return nil, fault.RecordCorrupted
	}

	return &File{
		ContentHash: content,
		Size:        size,
		Gateway:     gateway,
	}, nil
}
